package splitter

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileSystem is the I/O surface the splitter needs. Paths are passed through
// unchanged; implementations decide how to resolve them.
type FileSystem interface {
	ReadAllText(path string) (string, error)
	ReadAllLines(path string) ([]string, error)
	WriteAllLines(path string, lines []string) error
	DirectoryExists(path string) bool
	CreateDirectory(path string) error
	// FileSize returns the size in bytes; a missing file yields an error
	// satisfying errors.Is(err, fs.ErrNotExist).
	FileSize(path string) (int64, error)
}

// OSFileSystem is the FileSystem backed by the local disk. Writes go to a
// temp file in the target directory and are renamed into place.
type OSFileSystem struct{}

func (OSFileSystem) ReadAllText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (OSFileSystem) ReadAllLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	lines := []string{}
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read lines: %w", err)
	}
	return lines, nil
}

// outputFileMode is the mode of newly written output files.
const outputFileMode os.FileMode = 0644

func (OSFileSystem) WriteAllLines(path string, lines []string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".splitcs-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	w := bufio.NewWriter(tmp)
	for _, line := range lines {
		w.WriteString(line)
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	// CreateTemp uses 0600; keep the target's mode, or 0644 for new files.
	mode := outputFileMode
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to set file mode: %w", err)
	}

	// Rename to final location (atomic on the same filesystem)
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}

func (OSFileSystem) DirectoryExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func (OSFileSystem) CreateDirectory(path string) error {
	return os.MkdirAll(path, 0755)
}

func (OSFileSystem) FileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	if info.IsDir() {
		return 0, fmt.Errorf("%s is a directory", path)
	}
	return info.Size(), nil
}
