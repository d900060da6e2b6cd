package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/cmdgen/cmdgen/internal/appdetect"
	"github.com/cmdgen/cmdgen/internal/recommend"
	"github.com/cmdgen/cmdgen/pkg/config"
	"github.com/cmdgen/cmdgen/pkg/osutil"
	"github.com/cmdgen/cmdgen/pkg/templates"
)

type initFlags struct {
	path   string
	output string
	lang   string
}

func (f *initFlags) Bind(flags *pflag.FlagSet) {
	flags.StringVar(&f.path, "path", ".", "project directory to inspect")
	flags.StringVar(&f.output, "output", "",
		"directory to write command documents (default ~/.cmdgen/commands)")
	flags.StringVar(&f.lang, "lang", "",
		"skip detection and use this project type (rust, rust-wasm, javascript, typescript, nodejs)")
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Detect the project and generate matching command templates",
		Long: heredoc.Doc(`
			Inspect a project directory, classify its stack and write one
			markdown command document per recommended template.

			Custom templates placed under ~/.cmdgen/templates take precedence
			over built-in templates with the same id.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(flags)
		},
	}
	flags.Bind(cmd.Flags())
	return cmd
}

func runInit(flags *initFlags) error {
	cfg := loadConfig()

	templatesDir, err := config.TemplatesDir()
	if err != nil {
		return err
	}
	custom, packWarnings := config.LoadTemplatePacks(templatesDir)
	for _, warning := range packWarnings {
		color.Yellow("warning: template pack %s", warning)
	}

	project, err := resolveProject(flags, cfg)
	if err != nil {
		return err
	}
	for _, warning := range project.Warnings {
		color.Yellow("warning: %s", warning)
	}

	recommendations := recommend.Recommend(project, recommendOptions(cfg)...)
	if len(recommendations) == 0 {
		fmt.Printf("no templates to generate for %s project\n", project.Type.Display())
		return nil
	}

	ids := make([]string, 0, len(recommendations))
	for _, rec := range recommendations {
		ids = append(ids, rec.TemplateID)
	}

	catalog := templates.NewCatalog(custom)
	documents, renderErrors := templates.RenderAll(catalog, ids, templates.NewContext(project))

	output := flags.output
	if output == "" {
		output, err = config.CommandsDir()
		if err != nil {
			return err
		}
	}
	if err := os.MkdirAll(output, osutil.PermissionDirectory); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	written := 0
	for _, doc := range documents {
		path := filepath.Join(output, doc.Filename)
		if err := os.WriteFile(path, []byte(doc.Content), osutil.PermissionFile); err != nil {
			color.Red("failed %s: %v", doc.Filename, err)
			continue
		}
		written++
		color.Green("created %s", doc.Filename)
	}
	for _, renderErr := range renderErrors {
		color.Red("skipped %s: %v", renderErr.TemplateID, renderErr.Err)
	}

	fmt.Printf("done: %d commands written to %s\n", written, output)
	return nil
}

func resolveProject(flags *initFlags, cfg config.Config) (*appdetect.Project, error) {
	if flags.lang != "" {
		projectType, err := parseProjectType(flags.lang)
		if err != nil {
			return nil, err
		}

		name := filepath.Base(flags.path)
		if abs, err := filepath.Abs(flags.path); err == nil {
			name = filepath.Base(abs)
		}
		return &appdetect.Project{Root: flags.path, Name: name, Type: projectType}, nil
	}

	if !cfg.Settings.AutoDetect {
		return nil, errors.New("project detection is disabled in config; pass --lang")
	}

	var options []appdetect.DetectOption
	if cfg.Settings.PreferTypeScript {
		options = append(options, appdetect.WithPreferTypeScript())
	}

	return appdetect.Detect(flags.path, options...)
}

// recommendOptions translates config settings into recommendation options, so
// init and detect agree on which templates are in play.
func recommendOptions(cfg config.Config) []recommend.Option {
	var options []recommend.Option
	if !cfg.Settings.IncludeTests {
		options = append(options, recommend.WithoutTests())
	}
	if !cfg.Settings.IncludeDocs {
		options = append(options, recommend.WithoutDocs())
	}
	return options
}

func parseProjectType(lang string) (appdetect.ProjectType, error) {
	switch strings.ToLower(lang) {
	case "rust":
		return appdetect.RustNormal, nil
	case "rust-wasm", "wasm":
		return appdetect.RustWasm, nil
	case "javascript", "js":
		return appdetect.JavaScript, nil
	case "typescript", "ts":
		return appdetect.TypeScript, nil
	case "nodejs", "node":
		return appdetect.NodeJs, nil
	}

	return appdetect.Unknown, fmt.Errorf("unsupported language %q", lang)
}

// loadConfig never fails: configuration problems degrade to defaults with a
// warning.
func loadConfig() config.Config {
	path, err := config.FilePath()
	if err != nil {
		color.Yellow("warning: %v (using default config)", err)
		return config.Default()
	}

	cfg, err := config.Load(path)
	if err != nil {
		color.Yellow("warning: %v (using default config)", err)
	}
	return cfg
}
