package research

import (
	"fmt"
	"strings"

	"github.com/khaos-studio/uxkit/internal/artifact"
	"github.com/khaos-studio/uxkit/internal/study"
)

// Question templates applied to the research prompt. The %s slot takes
// the normalized topic.
var (
	coreQuestionForms = []string{
		"What motivates users when it comes to %s?",
		"What obstacles do users face with %s?",
		"How do users currently work around problems with %s?",
		"What would success look like for %s?",
	}
	followUpQuestionForms = []string{
		"Can you walk me through the last time you dealt with %s?",
		"What almost made you give up on %s?",
		"If you could change one thing about %s, what would it be?",
	}
)

// normalizeTopic trims a free-text prompt into a form that reads well
// inside a question sentence.
func normalizeTopic(prompt string) string {
	topic := strings.TrimSpace(prompt)
	topic = strings.TrimRight(topic, ".!?")
	return strings.TrimSpace(topic)
}

// GenerateQuestions derives a question set from a prompt, appends the
// questions to the study (skipping ones already present), and rewrites
// the questions artifact.
func GenerateQuestions(store *study.Store, gen *artifact.Generator, id, prompt string) (*artifact.Result, error) {
	topic := normalizeTopic(prompt)
	if topic == "" {
		return nil, fmt.Errorf("research prompt is empty")
	}

	st, err := store.Load(id)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(st.Questions))
	for _, q := range st.Questions {
		seen[q.Text] = true
	}
	appendUnique := func(forms []string, category string) {
		for _, form := range forms {
			text := fmt.Sprintf(form, topic)
			if seen[text] {
				continue
			}
			seen[text] = true
			st.Questions = append(st.Questions, study.Question{Text: text, Category: category})
		}
	}
	appendUnique(coreQuestionForms, study.CategoryCore)
	appendUnique(followUpQuestionForms, study.CategoryFollowUp)

	if err := store.Save(st); err != nil {
		return nil, err
	}
	return gen.Generate(st, artifact.TemplateQuestions, "questions.md", nil)
}
