package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Loader produces a validated Config.
type Loader interface {
	// Load merges defaults, the config file and SPLITCS_* variables, in
	// increasing order of precedence.
	Load() (*Config, error)
}

type loader struct {
	rootDir    string
	configFile string
}

// NewLoader creates a loader that looks for .splitcs/config.yml under rootDir.
// A non-empty configFile is used instead and must exist.
func NewLoader(rootDir, configFile string) Loader {
	return &loader{
		rootDir:    rootDir,
		configFile: configFile,
	}
}

// Load resolves SPLITCS_* variables over the config file (--config, or
// .splitcs/config.yml|yaml) over Default().
func (l *loader) Load() (*Config, error) {
	v := viper.New()

	if l.configFile != "" {
		v.SetConfigFile(l.configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(filepath.Join(l.rootDir, ".splitcs"))
	}

	v.SetEnvPrefix("SPLITCS")
	v.AutomaticEnv()
	// Replace . with _ in env var names (e.g., SPLITCS_OUTPUT_DIRECTORY)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.BindEnv("input.max_file_size")

	v.BindEnv("parsing.include_properties")
	v.BindEnv("parsing.include_constructors")
	v.BindEnv("parsing.skip_literals")

	v.BindEnv("output.directory")
	v.BindEnv("output.create_directories")
	v.BindEnv("output.indent_size")
	v.BindEnv("output.use_spaces")
	v.BindEnv("output.add_generated_comment")
	v.BindEnv("output.file_naming_pattern")
	v.BindEnv("output.extension")

	v.BindEnv("split.default_mode")
	v.BindEnv("split.default_count")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// No project config file means defaults plus environment.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setDefaults registers every key so AutomaticEnv can see it.
func setDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("input.patterns", d.Input.Patterns)
	v.SetDefault("input.max_file_size", d.Input.MaxFileSize)

	v.SetDefault("parsing.type_keywords", d.Parsing.TypeKeywords)
	v.SetDefault("parsing.include_properties", d.Parsing.IncludeProperties)
	v.SetDefault("parsing.include_constructors", d.Parsing.IncludeConstructors)
	v.SetDefault("parsing.skip_literals", d.Parsing.SkipLiterals)

	v.SetDefault("output.directory", d.Output.Directory)
	v.SetDefault("output.create_directories", d.Output.CreateDirectories)
	v.SetDefault("output.indent_size", d.Output.IndentSize)
	v.SetDefault("output.use_spaces", d.Output.UseSpaces)
	v.SetDefault("output.add_generated_comment", d.Output.AddGeneratedComment)
	v.SetDefault("output.file_naming_pattern", d.Output.FileNamingPattern)
	v.SetDefault("output.extension", d.Output.Extension)

	v.SetDefault("split.default_mode", d.Split.DefaultMode)
	v.SetDefault("split.default_count", d.Split.DefaultCount)
}

// LoadConfig loads configuration relative to the working directory.
func LoadConfig(configFile string) (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	return NewLoader(cwd, configFile).Load()
}

// LoadConfigFromDir loads rootDir/.splitcs/config.yml, if present.
func LoadConfigFromDir(rootDir string) (*Config, error) {
	return NewLoader(rootDir, "").Load()
}
