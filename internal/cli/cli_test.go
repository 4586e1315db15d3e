package cli

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

const (
	unformatted = "<?php\nfunction f(){echo 1;}"
	formatted   = "<?php\nfunction f() {\n    echo 1;\n}"
)

// execute runs the root command with args and stdin and returns its stdout
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCommand(BuildInfo{Version: "1.2.3", Commit: "abc123", Date: "2024-01-01"})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)

	assert.Contains(t, out, "php-ls")
	assert.Contains(t, out, "1.2.3")
	assert.Contains(t, out, "abc123")
	assert.Contains(t, out, "2024-01-01")
}

func TestFormatStdin(t *testing.T) {
	out, err := execute(t, unformatted, "format")
	require.NoError(t, err)
	assert.Equal(t, formatted, out)
}

func TestFormatIndentFlags(t *testing.T) {
	out, err := execute(t, unformatted, "format", "--tab-size", "2")
	require.NoError(t, err)
	assert.Equal(t, "<?php\nfunction f() {\n  echo 1;\n}", out)

	out, err = execute(t, unformatted, "format", "--use-tabs")
	require.NoError(t, err)
	assert.Equal(t, "<?php\nfunction f() {\n\techo 1;\n}", out)

	_, err = execute(t, unformatted, "format", "--tab-size", "0")
	assert.ErrorIs(t, err, ErrInvalidUsage)
}

func TestFormatConfigFile(t *testing.T) {
	configPath := writeTemp(t, "php-ls.yaml", "format:\n  tab_size: 3\n")

	out, err := execute(t, unformatted, "--config", configPath, "format")
	require.NoError(t, err)
	assert.Equal(t, "<?php\nfunction f() {\n   echo 1;\n}", out)

	_, err = execute(t, unformatted, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "format")
	assert.ErrorIs(t, err, ErrConfig)
	assert.Equal(t, ExitConfigError, ExitCodeFromError(err))
}

func TestFormatCheck(t *testing.T) {
	out, err := execute(t, unformatted, "format", "--check")
	assert.ErrorIs(t, err, ErrFormattingNeeded)
	assert.Equal(t, stdinName+"\n", out)

	out, err = execute(t, formatted, "format", "--check")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestFormatWrite(t *testing.T) {
	path := writeTemp(t, "a.php", unformatted)
	clean := writeTemp(t, "b.php", formatted)

	out, err := execute(t, "", "format", "--write", path, clean)
	require.NoError(t, err)
	assert.Empty(t, out)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, formatted, string(content))

	content, err = os.ReadFile(clean)
	require.NoError(t, err)
	assert.Equal(t, formatted, string(content))

	_, err = execute(t, unformatted, "format", "--write")
	assert.ErrorIs(t, err, ErrInvalidUsage)
}

func TestFormatDiff(t *testing.T) {
	out, err := execute(t, unformatted, "format", "--diff")
	require.NoError(t, err)

	assert.Contains(t, out, "--- <stdin>\n")
	assert.Contains(t, out, " <?php\n")
	assert.Contains(t, out, "-function f(){echo 1;}\n")
	assert.Contains(t, out, "+function f() {\n")
	assert.Contains(t, out, "+    echo 1;\n")
	assert.NotContains(t, out, "\x1b[")
}

func TestFormatRange(t *testing.T) {
	out, err := execute(t, unformatted, "format", "--range", "2:1-2:14")
	require.NoError(t, err)
	assert.Equal(t, "<?php\nfunction f() {echo 1;}", out)

	path := writeTemp(t, "a.php", unformatted)
	_, err = execute(t, "", "format", "--range", "2:1-2:14", path, path)
	assert.ErrorIs(t, err, ErrInvalidUsage)

	_, err = execute(t, unformatted, "format", "--range", "2")
	assert.ErrorIs(t, err, ErrInvalidUsage)
}

func TestFormatSyntaxErrors(t *testing.T) {
	path := writeTemp(t, "broken.php", "<?php\nclass {\n")

	out, err := execute(t, "", "format", "--write", path)
	assert.ErrorIs(t, err, ErrSyntaxErrors)
	assert.Empty(t, out)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<?php\nclass {\n", string(content))
}

func TestFormatMissingFile(t *testing.T) {
	_, err := execute(t, "", "format", filepath.Join(t.TempDir(), "missing.php"))
	assert.ErrorIs(t, err, ErrIO)
	assert.Equal(t, ExitIOError, ExitCodeFromError(err))
}

func TestTreeCommand(t *testing.T) {
	out, err := execute(t, "<?php\necho 1;\n", "tree")
	require.NoError(t, err)

	assert.Contains(t, out, "OpenTag")
	assert.Contains(t, out, "EchoIntrinsic")
	assert.Contains(t, out, `Echo "echo"`)

	out, err = execute(t, "<?php\necho 1;\n", "tree", "--depth", "0")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

func TestUnknownFlag(t *testing.T) {
	_, err := execute(t, "", "format", "--bogus")
	assert.ErrorIs(t, err, ErrInvalidUsage)
	assert.Equal(t, ExitInvalidUsage, ExitCodeFromError(err))
}

func TestParseRange(t *testing.T) {
	tests := []struct {
		spec    string
		want    protocol.Range
		wantErr bool
	}{
		{
			spec: "1:1-3:5",
			want: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End:   protocol.Position{Line: 2, Character: 4},
			},
		},
		{
			spec: " 10:2 - 10:2 ",
			want: protocol.Range{
				Start: protocol.Position{Line: 9, Character: 1},
				End:   protocol.Position{Line: 9, Character: 1},
			},
		},
		{spec: "1:1", wantErr: true},
		{spec: "0:1-1:1", wantErr: true},
		{spec: "1:0-1:1", wantErr: true},
		{spec: "a:b-c:d", wantErr: true},
		{spec: "1-2", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := parseRange(tt.spec)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWriteDiffColor(t *testing.T) {
	var out bytes.Buffer
	writeDiff(&out, "a.php", []byte("a\nb\n"), []byte("a\nc\n"), true)

	assert.Contains(t, out.String(), "\x1b[")
	assert.Contains(t, out.String(), "-b")
	assert.Contains(t, out.String(), "+c")
}

func TestWriteDiffContext(t *testing.T) {
	before := "1\n2\n3\n4\n5\n6\n7\n8\nx\n"
	after := "1\n2\n3\n4\n5\n6\n7\n8\ny\n"

	var out bytes.Buffer
	writeDiff(&out, "a.php", []byte(before), []byte(after), false)

	assert.Equal(t, "--- a.php\n+++ a.php (formatted)\n@@\n 7\n 8\n-x\n+y\n", out.String())
}

func TestColorEnabled(t *testing.T) {
	assert.True(t, colorEnabled("always", &bytes.Buffer{}))
	assert.False(t, colorEnabled("never", os.Stdout))
	assert.False(t, colorEnabled("auto", &bytes.Buffer{}))
}

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"formatting needed", ErrFormattingNeeded, ExitFormattingNeeded},
		{"syntax errors", ErrSyntaxErrors, ExitSyntaxErrors},
		{"joined", errors.Join(ErrFormattingNeeded, ErrSyntaxErrors), ExitFormattingNeeded},
		{"usage", ErrInvalidUsage, ExitInvalidUsage},
		{"config", ErrConfig, ExitConfigError},
		{"io", ErrIO, ExitIOError},
		{"other", errors.New("boom"), ExitInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeFromError(tt.err))
		})
	}
}
