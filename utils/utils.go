package utils

import (
	"os"
	"os/exec"
)

// Editor picks $EDITOR, then nvim, then vi, then ed.
func Editor() string {
	if ed := os.Getenv("EDITOR"); ed != "" {
		return ed
	}
	if p, err := exec.LookPath("nvim"); err == nil {
		return p
	}
	if p, err := exec.LookPath("vi"); err == nil {
		return p
	}
	return "ed"
}

// EditorCommand writes initial to a temp file and returns the command that
// opens it in the user's editor along with the file's path. The caller runs
// the command and hands the path to ReadEdited afterwards.
func EditorCommand(initial string) (*exec.Cmd, string, error) {
	tmp, err := os.CreateTemp("", "jot-note-*.md")
	if err != nil {
		return nil, "", err
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(initial); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return nil, "", err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return nil, "", err
	}

	cmd := exec.Command(Editor(), tmpName) //nolint:gosec // launching $EDITOR is the point
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd, tmpName, nil
}

// ReadEdited returns the file's contents and removes it.
func ReadEdited(path string) (string, error) {
	defer func() {
		_ = os.Remove(path)
	}()
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
