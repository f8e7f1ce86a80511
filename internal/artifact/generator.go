package artifact

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/natefinch/atomic"

	"github.com/khaos-studio/uxkit/internal/branding"
	"github.com/khaos-studio/uxkit/internal/study"
	"github.com/khaos-studio/uxkit/internal/template"
	"github.com/khaos-studio/uxkit/internal/workspace"
)

const dateFormat = "2006-01-02"

// Result holds the outcome of one artifact generation.
type Result struct {
	Path  string // absolute path of the written file
	Bytes int    // rendered size
}

// Generator renders study artifacts into the workspace.
type Generator struct {
	ws     *workspace.Workspace
	author string

	// now is the clock used for the generation stamp.
	now func() time.Time
}

// NewGenerator returns a generator bound to a workspace. The author name
// is stamped into artifact footers; empty is allowed.
func NewGenerator(ws *workspace.Workspace, author string) *Generator {
	return &Generator{ws: ws, author: author, now: time.Now}
}

// Generate renders the named template against a study and writes the
// result to outRel (a path relative to the study directory, e.g.
// "questions.md" or "interviews/jane.md"). Values in extra are merged
// over the base study context.
func (g *Generator) Generate(st *study.Study, name, outRel string, extra map[string]any) (*Result, error) {
	src, err := templateText(g.ws, name)
	if err != nil {
		return nil, err
	}
	reg, err := Partials(g.ws)
	if err != nil {
		return nil, err
	}

	ctx := g.baseContext(st)
	for k, v := range extra {
		ctx[k] = v
	}

	out, err := template.RenderWithPartials(src, reg, ctx)
	if err != nil {
		return nil, fmt.Errorf("rendering %s for study %s: %w", name, st.ID, err)
	}

	outPath := filepath.Join(g.ws.StudyPath(st.ID), outRel)
	if err := os.MkdirAll(filepath.Dir(outPath), workspace.DirPerm); err != nil {
		return nil, fmt.Errorf("creating artifact directory: %w", err)
	}
	if err := atomic.WriteFile(outPath, strings.NewReader(out)); err != nil {
		return nil, fmt.Errorf("writing artifact %s: %w", outPath, err)
	}

	return &Result{Path: outPath, Bytes: len(out)}, nil
}

// baseContext assembles the variables every artifact template can rely on.
func (g *Generator) baseContext(st *study.Study) map[string]any {
	questions := make([]any, 0, len(st.Questions))
	var core, followUp []any
	for _, q := range st.Questions {
		questions = append(questions, map[string]any{"text": q.Text, "category": q.Category})
		switch q.Category {
		case study.CategoryFollowUp:
			followUp = append(followUp, q.Text)
		default:
			core = append(core, q.Text)
		}
	}

	sources := make([]any, 0, len(st.Sources))
	for _, s := range st.Sources {
		sources = append(sources, map[string]any{
			"title": s.Title,
			"url":   s.URL,
			"kind":  s.Kind,
			"added": s.Added.Format(dateFormat),
		})
	}

	findings := make([]any, 0, len(st.Findings))
	for _, f := range st.Findings {
		findings = append(findings, map[string]any{"summary": f.Summary, "evidence": f.Evidence})
	}

	interviews := make([]any, 0, len(st.Interviews))
	for _, iv := range st.Interviews {
		interviews = append(interviews, map[string]any{
			"slug":        iv.Slug,
			"participant": iv.Participant,
			"date":        iv.Date.Format(dateFormat),
		})
	}

	return map[string]any{
		"study": map[string]any{
			"id":          st.ID,
			"name":        st.Name,
			"description": st.Description,
			"created":     st.Created.Format(dateFormat),
			"updated":     st.Updated.Format(dateFormat),
		},
		"questions":         questions,
		"coreQuestions":     core,
		"followUpQuestions": followUp,
		"sources":           sources,
		"findings":          findings,
		"interviews":        interviews,
		"hasCore":           len(core) > 0,
		"hasFollowUp":       len(followUp) > 0,
		"hasSources":        len(sources) > 0,
		"hasFindings":       len(findings) > 0,
		"counts": map[string]any{
			"questions":  len(st.Questions),
			"sources":    len(st.Sources),
			"interviews": len(st.Interviews),
			"findings":   len(st.Findings),
		},
		"generator": branding.DisplayName(),
		"author":    g.author,
		"date":      g.now().Format(dateFormat),
	}
}
