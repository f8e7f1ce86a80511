package cli

import (
	"fmt"

	"github.com/khaos-studio/uxkit/internal/artifact"
	"github.com/khaos-studio/uxkit/internal/study"
	"github.com/khaos-studio/uxkit/internal/workspace"
	"github.com/spf13/cobra"
)

var (
	studyDescription string
	studyDeleteForce bool
)

func init() {
	studyCreateCmd.Flags().StringVarP(&studyDescription, "description", "d", "", "Short study description")
	studyDeleteCmd.Flags().BoolVarP(&studyDeleteForce, "force", "f", false, "Delete without confirmation")

	studyCmd.AddCommand(studyCreateCmd)
	studyCmd.AddCommand(studyListCmd)
	studyCmd.AddCommand(studyShowCmd)
	studyCmd.AddCommand(studyDeleteCmd)
	rootCmd.AddCommand(studyCmd)
}

var studyCmd = &cobra.Command{
	Use:   "study",
	Short: "Manage research studies",
	Long:  `Create, list, inspect, and delete the studies stored in the workspace.`,
}

var studyCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new study",
	Long: `Create a study directory with its YAML document and an overview artifact.

Example:
  uxkit study create "Checkout Flow" -d "why users abandon checkout"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := workspace.FindFromCwd()
		if err != nil {
			return err
		}
		store := study.NewStore(ws)

		st, err := store.Create(args[0], studyDescription)
		if err != nil {
			return err
		}

		gen := generatorFor(ws)
		result, err := gen.Generate(st, artifact.TemplateStudy, "study.md", nil)
		if err != nil {
			return fmt.Errorf("generating study overview: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Created study %q (%s)\n", st.Name, st.ID)
		fmt.Fprintf(out, "  %s\n", result.Path)
		return nil
	},
}

var studyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List studies",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := workspace.FindFromCwd()
		if err != nil {
			return err
		}

		studies, err := study.NewStore(ws).List()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(studies) == 0 {
			fmt.Fprintln(out, "No studies yet. Create one with 'uxkit study create <name>'.")
			return nil
		}
		for _, st := range studies {
			fmt.Fprintf(out, "%-24s %s  questions:%d sources:%d interviews:%d findings:%d\n",
				st.ID, st.Created.Format("2006-01-02"),
				len(st.Questions), len(st.Sources), len(st.Interviews), len(st.Findings))
		}
		return nil
	},
}

var studyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one study in detail",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := workspace.FindFromCwd()
		if err != nil {
			return err
		}

		st, err := study.NewStore(ws).Load(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s (%s)\n", st.Name, st.ID)
		if st.Description != "" {
			fmt.Fprintf(out, "  %s\n", st.Description)
		}
		fmt.Fprintf(out, "  created: %s  updated: %s\n",
			st.Created.Format("2006-01-02"), st.Updated.Format("2006-01-02"))
		fmt.Fprintf(out, "  questions: %d\n", len(st.Questions))
		for _, q := range st.Questions {
			fmt.Fprintf(out, "    - [%s] %s\n", q.Category, q.Text)
		}
		fmt.Fprintf(out, "  sources: %d\n", len(st.Sources))
		for _, s := range st.Sources {
			fmt.Fprintf(out, "    - %s %s\n", s.Title, s.URL)
		}
		fmt.Fprintf(out, "  interviews: %d\n", len(st.Interviews))
		for _, iv := range st.Interviews {
			fmt.Fprintf(out, "    - %s (%s)\n", iv.Participant, iv.Slug)
		}
		fmt.Fprintf(out, "  findings: %d\n", len(st.Findings))
		for _, f := range st.Findings {
			fmt.Fprintf(out, "    - %s\n", f.Summary)
		}
		return nil
	},
}

var studyDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a study and all its artifacts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := workspace.FindFromCwd()
		if err != nil {
			return err
		}

		if !studyDeleteForce {
			return fmt.Errorf("deleting %q removes the study and every generated artifact; re-run with --force", args[0])
		}
		if err := study.NewStore(ws).Delete(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted study %q\n", args[0])
		return nil
	},
}
