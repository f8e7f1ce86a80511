package cli

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/khaos-studio/uxkit/internal/artifact"
	"github.com/khaos-studio/uxkit/internal/template"
	"github.com/khaos-studio/uxkit/internal/workspace"
	"github.com/spf13/cobra"
)

var (
	renderContextFile string
	renderOutput      string
)

func init() {
	renderCmd.Flags().StringVarP(&renderContextFile, "context", "c", "", "YAML file with template variables")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "Write output to a file instead of stdout")
	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render <template-file>",
	Short: "Render a template file ad hoc",
	Long: `Render a single template against a YAML context file, bypassing studies.
Useful for previewing template overrides before committing them.

Example:
  uxkit render .uxkit/templates/questions.md --context vars.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading template %s: %w", args[0], err)
		}

		data := map[string]any{}
		if renderContextFile != "" {
			raw, err := os.ReadFile(renderContextFile)
			if err != nil {
				return fmt.Errorf("reading context %s: %w", renderContextFile, err)
			}
			if err := yaml.Unmarshal(raw, &data); err != nil {
				return fmt.Errorf("parsing context %s: %w", renderContextFile, err)
			}
		}

		// Inside a workspace the preview sees the same partial registry
		// as real generation; outside, partial references pass through.
		var out string
		if ws, wsErr := workspace.FindFromCwd(); wsErr == nil {
			reg, err := artifact.Partials(ws)
			if err != nil {
				return err
			}
			out, err = template.RenderWithPartials(string(src), reg, data)
			if err != nil {
				return err
			}
		} else {
			var err error
			out, err = template.Render(string(src), data)
			if err != nil {
				return err
			}
		}

		if renderOutput != "" {
			if err := os.WriteFile(renderOutput, []byte(out), 0644); err != nil {
				return fmt.Errorf("writing output to %s: %w", renderOutput, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", renderOutput)
			return nil
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}
