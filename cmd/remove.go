package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/cmdgen/cmdgen/pkg/config"
)

func newRemoveCommand() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a generated command document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := output
			if dir == "" {
				var err error
				dir, err = config.CommandsDir()
				if err != nil {
					return err
				}
			}

			name := args[0]
			if !strings.HasSuffix(name, ".md") {
				name += ".md"
			}

			err := os.Remove(filepath.Join(dir, name))
			if errors.Is(err, fs.ErrNotExist) {
				fmt.Printf("no such command: %s\n", name)
				return nil
			}
			if err != nil {
				return fmt.Errorf("removing %s: %w", name, err)
			}

			color.Green("removed %s", name)
			return nil
		},
	}
	cmd.Flags().StringVar(&output, "output", "",
		"commands directory to remove from (default ~/.cmdgen/commands)")
	return cmd
}
