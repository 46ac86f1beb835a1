package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for Version and Root Command:
// - printVersion writes the version, commit and build date lines
// - "splitcs version" routes through the root command to stdout
// - Command errors are returned once and not printed by cobra itself

func executeRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestPrintVersion(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printVersion(&buf)

	lines := []string{
		"splitcs " + Version,
		"Git commit: " + GitCommit,
		"Build date: " + BuildDate,
	}
	for _, line := range lines {
		assert.Contains(t, buf.String(), line+"\n")
	}
}

func TestRootCommand_Version(t *testing.T) {
	out, errOut, err := executeRoot(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "splitcs "+Version)
	assert.Empty(t, errOut)
}

func TestRootCommand_ErrorsAreNotPrintedByCobra(t *testing.T) {
	_, errOut, err := executeRoot(t, "no-such-command")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
	assert.Empty(t, errOut)
}
