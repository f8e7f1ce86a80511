package workspace

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/khaos-studio/uxkit/internal/branding"
)

// Default content for .uxkit/config.yaml.
const defaultConfigContent = `# Project-level UX-Kit settings.
# author: Jane Doe
# templates:
#   dir: templates
`

// Init creates the workspace layout under projectDir and returns the
// resulting workspace. It prints progress messages to w. Existing items
// are skipped with a message, so Init is safe to re-run.
func Init(projectDir string, w io.Writer) (*Workspace, error) {
	root, err := filepath.Abs(filepath.Join(projectDir, branding.HomeDir()))
	if err != nil {
		return nil, fmt.Errorf("resolving project directory: %w", err)
	}
	ws := &Workspace{Root: root}

	for _, dir := range []string{
		ws.Root,
		ws.TemplatesPath(),
		ws.PartialsPath(),
		ws.StudiesPath(),
	} {
		if err := ensureDir(w, dir); err != nil {
			return nil, err
		}
	}

	if err := EnsureFile(w, ws.ConfigPath(), defaultConfigContent); err != nil {
		return nil, err
	}

	return ws, nil
}

// ensureDir creates a directory if missing, reporting what happened.
func ensureDir(w io.Writer, path string) error {
	if info, err := os.Stat(path); err == nil {
		if !info.IsDir() {
			return fmt.Errorf("%s exists and is not a directory", path)
		}
		fmt.Fprintf(w, "  exists  %s\n", path)
		return nil
	}
	if err := os.MkdirAll(path, DirPerm); err != nil {
		return fmt.Errorf("creating directory %s: %w", path, err)
	}
	fmt.Fprintf(w, "  created %s\n", path)
	return nil
}

// EnsureFile writes content to path unless the file already exists.
// Used both for the project config and for seeding default templates.
func EnsureFile(w io.Writer, path, content string) error {
	if _, err := os.Stat(path); err == nil {
		fmt.Fprintf(w, "  exists  %s\n", path)
		return nil
	}
	if err := os.WriteFile(path, []byte(content), FilePerm); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	fmt.Fprintf(w, "  created %s\n", path)
	return nil
}
