package commands

import (
	"github.com/spf13/cobra"

	"github.com/roleready/roleready/cmd/roleready/handlers"
)

// Build returns the command that runs the résumé wizard.
//
// Flags:
//
//	--answers, -a: Replay a YAML answers file instead of opening the TUI
//	--output, -o: Export the snapshot to this file ("-" for stdout)
//	--format, -f: Export format, yaml or json
//	--force: Overwrite an existing output file without asking
//	--config, -c: Config file (default: ./roleready.yaml if present)
//	--metrics-file: Write wizard metrics in Prometheus text format
//	--log-level, --log-format: Logger settings
func Build() *cobra.Command {
	var opts handlers.BuildOptions

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Run the résumé wizard",
		Long: `Run the résumé wizard.

The wizard has three steps:

  1. User Info: name, email, LinkedIn, education, work experience, skills
  2. Target Role: the job title you are aiming for
  3. Resume: pick one of the five templates and generate

Name and email are required before you can move past their questions.

Without a terminal, or for scripted use, pass --answers with a YAML file
and the same steps are replayed without the TUI.

The captured data is logged and, with --output, exported as YAML or JSON.`,
		Example: `  roleready build
  roleready build --output resume.yaml
  roleready build --answers answers.yaml --format json --output -`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Build(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.AnswersPath, "answers", "a", "", "Replay a YAML answers file instead of opening the TUI")
	cmd.Flags().StringVarP(&opts.OutputPath, "output", "o", "", `Export the snapshot to this file ("-" for stdout)`)
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Export format: yaml or json (default from config or file extension)")
	cmd.Flags().BoolVar(&opts.Force, "force", false, "Overwrite an existing output file without asking")
	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Config file (default: ./roleready.yaml if present)")
	cmd.Flags().StringVar(&opts.MetricsFile, "metrics-file", "", "Write wizard metrics to this file in Prometheus text format")
	cmd.Flags().StringVar(&opts.LogLevel, "log-level", "", "Log level: debug, info, warn or error")
	cmd.Flags().StringVar(&opts.LogFormat, "log-format", "", "Log format: console or json")

	return cmd
}
