package cmd

import (
	"github.com/spf13/cobra"
)

const listLongDescription = `List the files other commands would select for the given paths.

Without arguments every tracked file of the working directory is listed.
Directory arguments restrict the tracked files to those directories and
file arguments are always included. The default exclusions (.gitignore,
.stamp.yaml, lib/**/*.jar and Manifest.static) apply before --exclude.`

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [paths...]",
		Short: "List selected files",
		Long:  listLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.List(cmd.Context(), listArgs(args))
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
