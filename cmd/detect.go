package cmd

import (
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/cmdgen/cmdgen/internal/appdetect"
	"github.com/cmdgen/cmdgen/internal/recommend"
)

func newDetectCommand() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Show what cmdgen detects about a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()

			var options []appdetect.DetectOption
			if cfg.Settings.PreferTypeScript {
				options = append(options, appdetect.WithPreferTypeScript())
			}

			project, err := appdetect.Detect(path, options...)
			if err != nil {
				return err
			}

			if err := displayProject(cmd.OutOrStdout(), project, recommendOptions(cfg)...); err != nil {
				return err
			}

			for _, warning := range project.Warnings {
				color.Yellow("warning: %s", warning)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&path, "path", ".", "project directory to inspect")
	return cmd
}

func displayProject(writer io.Writer, project *appdetect.Project, options ...recommend.Option) error {
	tabs := tabwriter.NewWriter(writer, 0, 8, 1, ' ', 0)

	features := make([]string, 0, len(project.Features))
	for _, f := range project.Features {
		features = append(features, f.String())
	}

	ids := make([]string, 0)
	for _, rec := range recommend.Recommend(project, options...) {
		ids = append(ids, rec.TemplateID)
	}

	text := [][]string{
		{"Name", ":", project.Name},
		{"Type", ":", project.Type.Display()},
		{"Path", ":", project.Root},
		{"Dependencies", ":", strings.Join(project.Dependencies, ", ")},
		{"DevDependencies", ":", strings.Join(project.DevDependencies, ", ")},
		{"Features", ":", strings.Join(features, ", ")},
		{"Templates", ":", strings.Join(ids, ", ")},
	}

	for _, line := range text {
		if _, err := tabs.Write([]byte(strings.Join(line, "\t") + "\n")); err != nil {
			return err
		}
	}

	return tabs.Flush()
}
