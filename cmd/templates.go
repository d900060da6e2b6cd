package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cmdgen/cmdgen/pkg/config"
	"github.com/cmdgen/cmdgen/pkg/templates"
)

func newTemplatesCommand() *cobra.Command {
	var lang string
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List available templates, including custom overrides",
		RunE: func(cmd *cobra.Command, args []string) error {
			templatesDir, err := config.TemplatesDir()
			if err != nil {
				return err
			}
			custom, _ := config.LoadTemplatePacks(templatesDir)
			catalog := templates.NewCatalog(custom)

			list := catalog.List()
			if lang != "" {
				projectType, err := parseProjectType(lang)
				if err != nil {
					return err
				}
				list = catalog.ListFor(projectType)
			}

			out := cmd.OutOrStdout()
			for i, template := range list {
				if i > 0 {
					fmt.Fprintln(out)
				}
				if err := template.Display(out); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&lang, "lang", "",
		"only show templates for this project type (rust, rust-wasm, javascript, typescript, nodejs)")
	return cmd
}
