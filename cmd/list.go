package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cmdgen/cmdgen/pkg/config"
)

func newListCommand() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List generated command documents",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := output
			if dir == "" {
				var err error
				dir, err = config.CommandsDir()
				if err != nil {
					return err
				}
			}

			entries, err := os.ReadDir(dir)
			if errors.Is(err, fs.ErrNotExist) {
				fmt.Println("no command documents yet")
				return nil
			}
			if err != nil {
				return fmt.Errorf("reading commands directory: %w", err)
			}

			count := 0
			for _, entry := range entries {
				if entry.IsDir() || filepath.Ext(entry.Name()) != ".md" {
					continue
				}
				fmt.Printf(" - %s\n", entry.Name())
				count++
			}
			if count == 0 {
				fmt.Println("no command documents yet")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&output, "output", "",
		"commands directory to list (default ~/.cmdgen/commands)")
	return cmd
}
