package cli

import (
	"fmt"

	"github.com/khaos-studio/uxkit/internal/artifact"
	"github.com/khaos-studio/uxkit/internal/branding"
	"github.com/khaos-studio/uxkit/internal/workspace"
	"github.com/spf13/cobra"
)

var initProjectDir string

func init() {
	initCmd.Flags().StringVar(&initProjectDir, "project-dir", ".", "Project directory to initialize")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a " + branding.HomeDir() + " workspace in the current project",
	Long: `Create the workspace layout (templates, studies, project config) and seed
the default markdown templates so they can be customized per project.

Example:
  uxkit init
  uxkit init --project-dir ./docs`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Initializing %s workspace:\n", branding.DisplayName())

		ws, err := workspace.Init(initProjectDir, out)
		if err != nil {
			return err
		}
		if err := artifact.Seed(ws, out); err != nil {
			return fmt.Errorf("seeding templates: %w", err)
		}

		fmt.Fprintf(out, "\nWorkspace ready at %s\n", ws.Root)
		fmt.Fprintf(out, "Next: create a study with '%s study create \"My Study\"'\n", branding.CLIName())
		return nil
	},
}
