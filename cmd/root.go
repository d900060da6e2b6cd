// Package cmd implements the cmdgen command line interface. The commands are
// thin collaborators around the detection and template engines: they parse
// flags, load user configuration and persist rendered documents.
package cmd

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "cmdgen",
		Short: "Generate AI assistant command templates tailored to your project",
		Long: heredoc.Doc(`
			cmdgen inspects a project directory, classifies its technology
			stack (Rust, Rust/WASM, JavaScript, TypeScript, Node.js) and
			generates a set of markdown command templates matched to what it
			found. Detection only reads manifest files and the directory
			listing; nothing is executed.`),
		SilenceUsage: true,
	}

	root.AddCommand(
		newInitCommand(),
		newDetectCommand(),
		newTemplatesCommand(),
		newListCommand(),
		newRemoveCommand(),
		newConfigCommand(),
	)

	return root
}

func Execute() error {
	return NewRootCommand().Execute()
}
