package research

import (
	"fmt"
	"time"

	"github.com/khaos-studio/uxkit/internal/artifact"
	"github.com/khaos-studio/uxkit/internal/study"
)

// AddSources records discovered sources on the study and rewrites the
// sources artifact. Sources are deduplicated by URL (by title when the
// URL is empty); duplicates are skipped silently.
func AddSources(store *study.Store, gen *artifact.Generator, id string, sources []study.Source) (*artifact.Result, error) {
	if len(sources) == 0 {
		return nil, fmt.Errorf("no sources given")
	}

	st, err := store.Load(id)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(st.Sources))
	for _, s := range st.Sources {
		seen[sourceKey(s)] = true
	}

	now := time.Now().UTC().Truncate(time.Second)
	for _, s := range sources {
		if s.Title == "" {
			return nil, fmt.Errorf("source with URL %q has no title", s.URL)
		}
		key := sourceKey(s)
		if seen[key] {
			continue
		}
		seen[key] = true
		if s.Added.IsZero() {
			s.Added = now
		}
		st.Sources = append(st.Sources, s)
	}

	if err := store.Save(st); err != nil {
		return nil, err
	}
	return gen.Generate(st, artifact.TemplateSources, "sources.md", nil)
}

func sourceKey(s study.Source) string {
	if s.URL != "" {
		return "url:" + s.URL
	}
	return "title:" + s.Title
}
