package research

import (
	"fmt"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/khaos-studio/uxkit/internal/artifact"
	"github.com/khaos-studio/uxkit/internal/study"
)

// Turn is one speaker's contribution in a formatted transcript.
type Turn struct {
	Speaker string
	Text    string
}

// speakerLine matches "Name: text" transcript lines. A name is at most
// two words, which keeps sentences that happen to contain a colon from
// opening a new turn.
var speakerLine = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9.'-]*(?: [A-Za-z0-9.'-]+)?):\s*(.*)$`)

// ParseTranscript splits raw interview text into speaker turns. Lines
// without a speaker prefix continue the current turn; text before the
// first speaker is attributed to "Unknown".
func ParseTranscript(raw string) []Turn {
	var turns []Turn
	appendText := func(text string) {
		if text == "" {
			return
		}
		if len(turns) == 0 {
			turns = append(turns, Turn{Speaker: "Unknown"})
		}
		cur := &turns[len(turns)-1]
		if cur.Text != "" {
			cur.Text += " "
		}
		cur.Text += text
	}

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if m := speakerLine.FindStringSubmatch(line); m != nil {
			turns = append(turns, Turn{Speaker: strings.TrimSpace(m[1])})
			appendText(strings.TrimSpace(m[2]))
			continue
		}
		appendText(line)
	}

	// Drop turns that ended up with no text at all.
	out := turns[:0]
	for _, t := range turns {
		if t.Text != "" {
			out = append(out, t)
		}
	}
	return out
}

// FormatInterview parses a transcript, records the interview on the
// study, and generates interviews/<slug>.md. Re-running with the same
// participant replaces the previous record and artifact.
func FormatInterview(store *study.Store, gen *artifact.Generator, id, participant string, date time.Time, transcript string) (*artifact.Result, error) {
	slug := study.Slugify(participant)
	if slug == "" {
		return nil, fmt.Errorf("cannot derive a slug from participant %q", participant)
	}
	turns := ParseTranscript(transcript)
	if len(turns) == 0 {
		return nil, fmt.Errorf("transcript is empty")
	}

	st, err := store.Load(id)
	if err != nil {
		return nil, err
	}

	if date.IsZero() {
		date = time.Now().UTC().Truncate(time.Second)
	}
	record := study.Interview{Slug: slug, Participant: participant, Date: date}
	replaced := false
	for i, iv := range st.Interviews {
		if iv.Slug == slug {
			st.Interviews[i] = record
			replaced = true
			break
		}
	}
	if !replaced {
		st.Interviews = append(st.Interviews, record)
	}

	if err := store.Save(st); err != nil {
		return nil, err
	}

	turnCtx := make([]any, len(turns))
	for i, t := range turns {
		turnCtx[i] = map[string]any{"speaker": t.Speaker, "text": t.Text}
	}
	extra := map[string]any{
		"participant": participant,
		"date":        date.Format("2006-01-02"),
		"turns":       turnCtx,
	}
	return gen.Generate(st, artifact.TemplateInterview, path.Join("interviews", slug+".md"), extra)
}
