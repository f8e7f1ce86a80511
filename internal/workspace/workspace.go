package workspace

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/khaos-studio/uxkit/internal/branding"
	"github.com/khaos-studio/uxkit/internal/config"
)

// Directory and file name constants for the workspace convention.
const (
	TemplatesDir = "templates"
	PartialsDir  = "partials"
	StudiesDir   = "studies"
	ConfigFile   = "config.yaml"
)

// Permission constants.
const (
	DirPerm  os.FileMode = 0755
	FilePerm os.FileMode = 0644
)

// ErrNotFound is returned when no workspace exists at or above the
// starting directory.
var ErrNotFound = errors.New("no workspace found (run 'uxkit init' first)")

// Workspace is a resolved .uxkit/ directory.
type Workspace struct {
	// Root is the absolute path of the .uxkit directory itself.
	Root string
}

// Find locates the nearest workspace. It checks the UXKIT_ROOT
// environment variable first, then walks up from start looking for a
// .uxkit directory.
func Find(start string) (*Workspace, error) {
	if v := os.Getenv(branding.EnvVar("ROOT")); v != "" {
		if info, err := os.Stat(v); err == nil && info.IsDir() {
			return &Workspace{Root: v}, nil
		}
		return nil, fmt.Errorf("%s points at a missing directory: %s", branding.EnvVar("ROOT"), v)
	}

	dir, err := filepath.Abs(start)
	if err != nil {
		return nil, fmt.Errorf("resolving start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, branding.HomeDir())
		if info, statErr := os.Stat(candidate); statErr == nil && info.IsDir() {
			return &Workspace{Root: candidate}, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, ErrNotFound
		}
		dir = parent
	}
}

// FindFromCwd locates the nearest workspace starting at the current
// working directory.
func FindFromCwd() (*Workspace, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("resolving working directory: %w", err)
	}
	return Find(cwd)
}

// Settings are the project-level options stored in .uxkit/config.yaml.
type Settings struct {
	Author    string `yaml:"author"`
	Templates struct {
		Dir string `yaml:"dir"`
	} `yaml:"templates"`
}

// Settings reads the project config file. A missing file yields zero
// settings; malformed YAML is an error.
func (w *Workspace) Settings() (Settings, error) {
	var s Settings
	data, err := os.ReadFile(w.ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, fmt.Errorf("reading %s: %w", w.ConfigPath(), err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parsing %s: %w", w.ConfigPath(), err)
	}
	return s, nil
}

// TemplatesPath returns the template-override directory. A templates.dir
// value in the project config wins over the user-level setting; relative
// values resolve against the workspace root. Unset, it is templates/.
func (w *Workspace) TemplatesPath() string {
	dir := ""
	if s, err := w.Settings(); err == nil {
		dir = s.Templates.Dir
	}
	if dir == "" {
		dir = config.Get(config.KeyTemplatesDir)
	}
	if dir == "" {
		dir = TemplatesDir
	}
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(w.Root, dir)
	}
	return dir
}

// PartialsPath returns the partial-override directory, nested under the
// resolved templates directory.
func (w *Workspace) PartialsPath() string {
	return filepath.Join(w.TemplatesPath(), PartialsDir)
}

// StudiesPath returns the directory holding one subdirectory per study.
func (w *Workspace) StudiesPath() string {
	return filepath.Join(w.Root, StudiesDir)
}

// StudyPath returns the directory for a single study.
func (w *Workspace) StudyPath(id string) string {
	return filepath.Join(w.Root, StudiesDir, id)
}

// ConfigPath returns the project-level config file path.
func (w *Workspace) ConfigPath() string {
	return filepath.Join(w.Root, ConfigFile)
}
