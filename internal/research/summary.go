package research

import (
	"fmt"

	"github.com/khaos-studio/uxkit/internal/artifact"
	"github.com/khaos-studio/uxkit/internal/study"
)

// AddFinding records a synthesized insight on the study and rewrites the
// summary artifact.
func AddFinding(store *study.Store, gen *artifact.Generator, id string, finding study.Finding) (*artifact.Result, error) {
	if finding.Summary == "" {
		return nil, fmt.Errorf("finding has no summary")
	}

	st, err := store.Load(id)
	if err != nil {
		return nil, err
	}
	st.Findings = append(st.Findings, finding)
	if err := store.Save(st); err != nil {
		return nil, err
	}
	return gen.Generate(st, artifact.TemplateSummary, "summary.md", nil)
}

// Summarize regenerates the cross-artifact summary for a study.
func Summarize(store *study.Store, gen *artifact.Generator, id string) (*artifact.Result, error) {
	st, err := store.Load(id)
	if err != nil {
		return nil, err
	}
	return gen.Generate(st, artifact.TemplateSummary, "summary.md", nil)
}
