package study

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/natefinch/atomic"
	"go.yaml.in/yaml/v3"

	"github.com/khaos-studio/uxkit/internal/workspace"
)

// FileName is the study document name inside each study directory.
const FileName = "study.yaml"

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a study id from a display name: lowercase, with
// non-alphanumeric runs collapsed to single dashes.
func Slugify(name string) string {
	slug := slugStrip.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}

// Store reads and writes studies inside one workspace.
type Store struct {
	ws *workspace.Workspace
}

// NewStore returns a store bound to a workspace.
func NewStore(ws *workspace.Workspace) *Store {
	return &Store{ws: ws}
}

// Dir returns the directory for a study id.
func (s *Store) Dir(id string) string {
	return s.ws.StudyPath(id)
}

// Create scaffolds a new study directory and writes its initial document.
func (s *Store) Create(name, description string) (*Study, error) {
	id := Slugify(name)
	if id == "" {
		return nil, fmt.Errorf("cannot derive a study id from name %q", name)
	}

	dir := s.Dir(id)
	if _, err := os.Stat(dir); err == nil {
		return nil, fmt.Errorf("study %q already exists", id)
	}
	if err := os.MkdirAll(dir, workspace.DirPerm); err != nil {
		return nil, fmt.Errorf("creating study directory %s: %w", dir, err)
	}

	now := time.Now().UTC().Truncate(time.Second)
	st := &Study{
		SchemaVersion: SchemaVersion,
		ID:            id,
		Name:          name,
		Description:   description,
		Created:       now,
		Updated:       now,
	}
	if err := s.Save(st); err != nil {
		return nil, err
	}
	return st, nil
}

// Load reads a study document, migrating older schema versions forward.
// A migrated document is rewritten so the upgrade happens once.
func (s *Store) Load(id string) (*Study, error) {
	path := filepath.Join(s.Dir(id), FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading study %s: %w", path, err)
	}

	data, migrated, err := Migrate(data)
	if err != nil {
		return nil, fmt.Errorf("migrating study %s: %w", path, err)
	}

	var st Study
	if err := yaml.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("parsing study %s: %w", path, err)
	}

	if migrated {
		if err := s.Save(&st); err != nil {
			return nil, fmt.Errorf("rewriting migrated study %s: %w", path, err)
		}
	}
	return &st, nil
}

// Save validates and atomically writes a study document, stamping the
// updated timestamp.
func (s *Store) Save(st *Study) error {
	st.SchemaVersion = SchemaVersion
	st.Updated = time.Now().UTC().Truncate(time.Second)

	data, err := yaml.Marshal(st)
	if err != nil {
		return fmt.Errorf("marshaling study %s: %w", st.ID, err)
	}

	result, err := Validate(data)
	if err != nil {
		return fmt.Errorf("validating study %s: %w", st.ID, err)
	}
	if !result.Valid {
		var msgs []string
		for _, issue := range result.Issues {
			msg := issue.Message
			if issue.Path != "" {
				msg = issue.Path + ": " + msg
			}
			msgs = append(msgs, msg)
		}
		return fmt.Errorf("study %s is invalid: %s", st.ID, strings.Join(msgs, "; "))
	}

	path := filepath.Join(s.Dir(st.ID), FileName)
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("writing study %s: %w", path, err)
	}
	return nil
}

// List returns all studies sorted by creation time, oldest first.
func (s *Store) List() ([]*Study, error) {
	entries, err := os.ReadDir(s.ws.StudiesPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading studies directory: %w", err)
	}

	var studies []*Study
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		st, err := s.Load(entry.Name())
		if err != nil {
			return nil, err
		}
		studies = append(studies, st)
	}

	sort.Slice(studies, func(i, j int) bool {
		if studies[i].Created.Equal(studies[j].Created) {
			return studies[i].ID < studies[j].ID
		}
		return studies[i].Created.Before(studies[j].Created)
	})
	return studies, nil
}

// Delete removes a study directory and all artifacts inside it.
func (s *Store) Delete(id string) error {
	dir := s.Dir(id)
	if _, err := os.Stat(dir); err != nil {
		return fmt.Errorf("study %q not found", id)
	}
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("deleting study %s: %w", dir, err)
	}
	return nil
}
