package cli

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
)

const (
	stdinName = "<stdin>"
	stdinURI  = "file:///dev/stdin"
)

// input is one source read from a file or stdin
type input struct {
	name    string
	path    string
	uri     string
	mode    os.FileMode
	content []byte
}

func (in *input) isStdin() bool {
	return in.path == ""
}

// readInput reads path, or stdin when path is empty or "-"
func readInput(stdin io.Reader, path string) (*input, error) {
	if path == "" || path == "-" {
		content, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("%w: reading stdin: %w", ErrIO, err)
		}
		return &input{name: stdinName, uri: stdinURI, content: content}, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrInvalidUsage, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	return &input{
		name:    path,
		path:    path,
		uri:     (&url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}).String(),
		mode:    info.Mode().Perm(),
		content: content,
	}, nil
}

// write replaces the file content, keeping its permissions
func (in *input) write(content []byte) error {
	if err := os.WriteFile(in.path, content, in.mode); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	return nil
}
