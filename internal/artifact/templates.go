package artifact

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/khaos-studio/uxkit/internal/workspace"
)

//go:embed templates
var templateFS embed.FS

// Built-in template names (without the .md suffix).
const (
	TemplateStudy     = "study"
	TemplateQuestions = "questions"
	TemplateSources   = "sources"
	TemplateInterview = "interview"
	TemplateSummary   = "summary"
)

// templateText returns the source of a named template, preferring a
// workspace override under templates/<name>.md over the embedded default.
func templateText(ws *workspace.Workspace, name string) (string, error) {
	override := filepath.Join(ws.TemplatesPath(), name+".md")
	if data, err := os.ReadFile(override); err == nil {
		return string(data), nil
	}

	data, err := templateFS.ReadFile("templates/" + name + ".md")
	if err != nil {
		return "", fmt.Errorf("unknown template %q: %w", name, err)
	}
	return string(data), nil
}

// Partials returns the partial registry: every embedded partial, with
// workspace overrides from templates/partials/ layered on top.
func Partials(ws *workspace.Workspace) (map[string]string, error) {
	reg := make(map[string]string)

	entries, err := fs.ReadDir(templateFS, "templates/partials")
	if err != nil {
		return nil, fmt.Errorf("reading embedded partials: %w", err)
	}
	for _, entry := range entries {
		data, err := templateFS.ReadFile("templates/partials/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("reading embedded partial %s: %w", entry.Name(), err)
		}
		reg[strings.TrimSuffix(entry.Name(), ".md")] = string(data)
	}

	overrides, err := os.ReadDir(ws.PartialsPath())
	if err != nil {
		if os.IsNotExist(err) {
			return reg, nil
		}
		return nil, fmt.Errorf("reading partial overrides: %w", err)
	}
	for _, entry := range overrides {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(ws.PartialsPath(), entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading partial override %s: %w", entry.Name(), err)
		}
		reg[strings.TrimSuffix(entry.Name(), ".md")] = string(data)
	}
	return reg, nil
}

// Seed copies the embedded templates into the workspace so users can
// edit them. Existing files are left alone.
func Seed(ws *workspace.Workspace, w io.Writer) error {
	return fs.WalkDir(templateFS, "templates", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := templateFS.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading embedded template %s: %w", path, err)
		}
		rel := strings.TrimPrefix(path, "templates/")
		return workspace.EnsureFile(w, filepath.Join(ws.TemplatesPath(), rel), string(data))
	})
}
