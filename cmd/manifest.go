package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/stamp/internal/domain"
)

const manifestLongDescription = `Write the sorted list of distributed files.

Tracked files are written to Manifest.txt, which lists itself. When
Manifest.static exists, or with --static, that file is rewritten instead.
Files below src/ are left out. Paths sort segment by segment with files
before subdirectories, and lib/<name>/base.rb or version.rb are moved ahead
of lib/<name>.rb.`

var manifestStaticFlag bool

// manifestCmd represents the manifest command.
var manifestCmd = newManifestCmd()

func newManifestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "manifest [paths...]",
		Short: "Write Manifest.txt",
		Long:  manifestLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Manifest(cmd.Context(), domain.ManifestArgs{
				ListArgs: listArgs(args),
				Static:   manifestStaticFlag,
			})
		},
	}
	cmd.Flags().BoolVarP(&manifestStaticFlag, "static", "s", false, "write Manifest.static")

	return cmd
}

func init() {
	rootCmd.AddCommand(manifestCmd)
}
