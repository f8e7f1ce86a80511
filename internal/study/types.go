package study

import "time"

// SchemaVersion is the current study document schema. Load migrates
// older documents forward; see migrate.go for the version history.
const SchemaVersion = "2.0.0"

// Question categories.
const (
	CategoryCore     = "core"
	CategoryFollowUp = "follow-up"
)

// Study is one named research effort and everything collected for it.
type Study struct {
	SchemaVersion string      `yaml:"schema_version"`
	ID            string      `yaml:"id"`
	Name          string      `yaml:"name"`
	Description   string      `yaml:"description,omitempty"`
	Created       time.Time   `yaml:"created"`
	Updated       time.Time   `yaml:"updated"`
	Questions     []Question  `yaml:"questions,omitempty"`
	Sources       []Source    `yaml:"sources,omitempty"`
	Interviews    []Interview `yaml:"interviews,omitempty"`
	Findings      []Finding   `yaml:"findings,omitempty"`
}

// Question is a single research question.
type Question struct {
	Text     string `yaml:"text"`
	Category string `yaml:"category,omitempty"`
}

// Source is a discovered reference (article, recording, ticket, ...).
type Source struct {
	Title string    `yaml:"title"`
	URL   string    `yaml:"url,omitempty"`
	Kind  string    `yaml:"kind,omitempty"`
	Added time.Time `yaml:"added,omitempty"`
}

// Interview records a formatted interview artifact.
type Interview struct {
	Slug        string    `yaml:"slug"`
	Participant string    `yaml:"participant"`
	Date        time.Time `yaml:"date,omitempty"`
}

// Finding is a synthesized insight.
type Finding struct {
	Summary  string `yaml:"summary"`
	Evidence string `yaml:"evidence,omitempty"`
}
