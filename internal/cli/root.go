package cli

import (
	"github.com/khaos-studio/uxkit/internal/branding"
	"github.com/khaos-studio/uxkit/internal/config"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scaffolds a research workspace inside a project, manages named
studies, and generates markdown artifacts (questions, sources, interviews,
summaries) from templates that users can override per project.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// User-level settings (author name, editor) are optional for
		// every command, so a missing config file is fine.
		config.Load()
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
