// Package editor round-trips text through the user's text editor.
package editor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// ErrNoEditor is returned when no editor can be found
var ErrNoEditor = errors.New("no editor found. Please set the EDITOR environment variable")

// Editor lets the user change a document by hand
type Editor interface {
	Edit(ctx context.Context, content []byte) ([]byte, error)
}

// External runs an editor program on a temporary file
type External struct {
	// Command is the editor program, optionally with arguments ("code -w")
	Command string
}

// Edit writes content to a temp file, waits for the editor to exit and
// returns the file's new content.
func (e External) Edit(ctx context.Context, content []byte) ([]byte, error) {
	fields := strings.Fields(e.Command)
	if len(fields) == 0 {
		return nil, ErrNoEditor
	}

	f, err := os.CreateTemp("", "ti.*.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	path := f.Name()
	defer func() { _ = os.Remove(path) }()

	if _, err := f.Write(content); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to write temp file: %w", err)
	}

	cmd := exec.CommandContext(ctx, fields[0], append(fields[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("failed to run editor: %w", err)
	}

	edited, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read edited file: %w", err)
	}
	return edited, nil
}

// Find detects the editor to use in order of preference:
// $EDITOR, $VISUAL, then common editors for the OS.
func Find(getenv func(string) string) string {
	if editor := getenv("EDITOR"); editor != "" {
		return editor
	}
	if editor := getenv("VISUAL"); editor != "" {
		return editor
	}

	var editors []string
	switch runtime.GOOS {
	case "windows":
		editors = []string{"notepad"}
	default:
		editors = []string{"vim", "nano", "vi"}
	}

	for _, editor := range editors {
		if _, err := exec.LookPath(editor); err == nil {
			return editor
		}
	}
	return ""
}
