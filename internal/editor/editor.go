package editor

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

const (
	// defaultEditor is used when $EDITOR is unset.
	defaultEditor = "vim"

	tempFileName = "dailylog.md"
)

// Editor acquires free-form text by round-tripping a temporary file through
// the user's $EDITOR. The subprocess call blocks until the editor exits.
// It satisfies logbook.TextSource.
type Editor struct {
	// program overrides the editor binary. Empty means $EDITOR, then vim.
	program string
	// tempDir overrides where the scratch file lives. Empty means os.TempDir.
	tempDir string
}

// New returns an Editor resolving the program from the environment at capture time.
func New() *Editor {
	return &Editor{}
}

// Capture opens the editor on an empty scratch file and returns what the
// user wrote.
func (e *Editor) Capture(ctx context.Context) (string, error) {
	return e.CaptureSeeded(ctx, "")
}

// CaptureSeeded opens the editor on a scratch file pre-filled with seed and
// returns the resulting content.
func (e *Editor) CaptureSeeded(ctx context.Context, seed string) (string, error) {
	path := e.scratchPath()
	if err := os.WriteFile(path, []byte(seed), 0o600); err != nil {
		return "", fmt.Errorf("write scratch file: %w", err)
	}
	defer os.Remove(path)

	cmd := exec.CommandContext(ctx, e.resolveProgram(), path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("launch editor: %w", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read scratch file: %w", err)
	}
	return string(content), nil
}

func (e *Editor) resolveProgram() string {
	if e.program != "" {
		return e.program
	}
	if program := os.Getenv("EDITOR"); program != "" {
		return program
	}
	return defaultEditor
}

func (e *Editor) scratchPath() string {
	dir := e.tempDir
	if dir == "" {
		dir = os.TempDir()
	}
	return filepath.Join(dir, tempFileName)
}
