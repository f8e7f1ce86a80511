package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/khaos-studio/uxkit/internal/artifact"
	"github.com/khaos-studio/uxkit/internal/config"
	"github.com/khaos-studio/uxkit/internal/research"
	"github.com/khaos-studio/uxkit/internal/study"
	"github.com/khaos-studio/uxkit/internal/workspace"
	"github.com/spf13/cobra"
)

var (
	researchStudyID string

	sourceTitle string
	sourceURL   string
	sourceKind  string

	interviewParticipant string
	interviewDate        string

	findingSummary  string
	findingEvidence string
)

func init() {
	researchCmd.PersistentFlags().StringVarP(&researchStudyID, "study", "s", "", "Study id (required)")

	researchSourcesCmd.Flags().StringVar(&sourceTitle, "title", "", "Source title (required)")
	researchSourcesCmd.Flags().StringVar(&sourceURL, "url", "", "Source URL")
	researchSourcesCmd.Flags().StringVar(&sourceKind, "kind", "", "Source kind (article, recording, tickets, ...)")

	researchInterviewCmd.Flags().StringVar(&interviewParticipant, "participant", "", "Participant name (required)")
	researchInterviewCmd.Flags().StringVar(&interviewDate, "date", "", "Interview date (YYYY-MM-DD, default today)")

	researchFindingCmd.Flags().StringVar(&findingSummary, "summary", "", "Finding summary (required)")
	researchFindingCmd.Flags().StringVar(&findingEvidence, "evidence", "", "Supporting evidence")

	researchCmd.AddCommand(researchQuestionsCmd)
	researchCmd.AddCommand(researchSourcesCmd)
	researchCmd.AddCommand(researchInterviewCmd)
	researchCmd.AddCommand(researchFindingCmd)
	researchCmd.AddCommand(researchSummarizeCmd)
	rootCmd.AddCommand(researchCmd)
}

var researchCmd = &cobra.Command{
	Use:   "research",
	Short: "Run research-workflow steps for a study",
	Long: `Each step updates the study document and regenerates the matching
markdown artifact inside the study directory.`,
}

// researchContext resolves the workspace, store, and generator shared by
// every research subcommand.
func researchContext() (*study.Store, *artifact.Generator, error) {
	if researchStudyID == "" {
		return nil, nil, fmt.Errorf("--study is required")
	}
	ws, err := workspace.FindFromCwd()
	if err != nil {
		return nil, nil, err
	}
	return study.NewStore(ws), generatorFor(ws), nil
}

// generatorFor builds the artifact generator for a workspace. An author
// set in the project config wins over the user-level setting.
func generatorFor(ws *workspace.Workspace) *artifact.Generator {
	author := config.Author()
	if s, err := ws.Settings(); err == nil && s.Author != "" {
		author = s.Author
	}
	return artifact.NewGenerator(ws, author)
}

func printArtifact(cmd *cobra.Command, result *artifact.Result) {
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d bytes)\n", result.Path, result.Bytes)
}

var researchQuestionsCmd = &cobra.Command{
	Use:   "questions <prompt>",
	Short: "Generate research questions from a prompt",
	Long: `Derive a core and follow-up question set from a free-text prompt.

Example:
  uxkit research questions --study checkout-flow "the checkout flow"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, gen, err := researchContext()
		if err != nil {
			return err
		}
		result, err := research.GenerateQuestions(store, gen, researchStudyID, args[0])
		if err != nil {
			return err
		}
		printArtifact(cmd, result)
		return nil
	},
}

var researchSourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "Record a discovered source",
	Long: `Add a source to the study. Duplicate URLs are skipped.

Example:
  uxkit research sources --study checkout-flow --title "Support tickets Q1" --url https://tracker.example/q1`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, gen, err := researchContext()
		if err != nil {
			return err
		}
		if sourceTitle == "" {
			return fmt.Errorf("--title is required")
		}
		result, err := research.AddSources(store, gen, researchStudyID, []study.Source{
			{Title: sourceTitle, URL: sourceURL, Kind: sourceKind},
		})
		if err != nil {
			return err
		}
		printArtifact(cmd, result)
		return nil
	},
}

var researchInterviewCmd = &cobra.Command{
	Use:   "interview <transcript-file>",
	Short: "Format a raw transcript into an interview artifact",
	Long: `Read a transcript file, split it into speaker turns, and generate
interviews/<participant-slug>.md.

Example:
  uxkit research interview --study checkout-flow --participant "P 04" notes/p04.txt`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, gen, err := researchContext()
		if err != nil {
			return err
		}
		if interviewParticipant == "" {
			return fmt.Errorf("--participant is required")
		}

		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading transcript %s: %w", args[0], err)
		}

		var date time.Time
		if interviewDate != "" {
			date, err = time.Parse("2006-01-02", interviewDate)
			if err != nil {
				return fmt.Errorf("invalid --date %q (want YYYY-MM-DD): %w", interviewDate, err)
			}
		}

		result, err := research.FormatInterview(store, gen, researchStudyID,
			interviewParticipant, date, string(raw))
		if err != nil {
			return err
		}
		printArtifact(cmd, result)
		return nil
	},
}

var researchFindingCmd = &cobra.Command{
	Use:   "finding",
	Short: "Record a synthesized finding",
	Long: `Add a finding to the study and refresh the summary artifact.

Example:
  uxkit research finding --study checkout-flow --summary "Promo code errors block purchases" --evidence "4 of 6 sessions"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, gen, err := researchContext()
		if err != nil {
			return err
		}
		if findingSummary == "" {
			return fmt.Errorf("--summary is required")
		}
		result, err := research.AddFinding(store, gen, researchStudyID, study.Finding{
			Summary:  findingSummary,
			Evidence: findingEvidence,
		})
		if err != nil {
			return err
		}
		printArtifact(cmd, result)
		return nil
	},
}

var researchSummarizeCmd = &cobra.Command{
	Use:   "summarize",
	Short: "Regenerate the study summary artifact",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, gen, err := researchContext()
		if err != nil {
			return err
		}
		result, err := research.Summarize(store, gen, researchStudyID)
		if err != nil {
			return err
		}
		printArtifact(cmd, result)
		return nil
	},
}
