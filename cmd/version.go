package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/stamp/internal/domain"
)

const versionLongDescription = `Set VERSION in the selected files.

Recognized files:
  History.*, CHANGELOG*   release a TBD stanza or add "=== VERSION (TBD)"
  pom.xml                 first <version> element
  version.rb, base.rb     VERSION constant
  version.go              Version constant
  init/*                  gem version pin
  *.gemspec               dependencies on --depend-prefix gems

With --depend-prefix, pom.xml dependencies on artifacts with that prefix
get the range [VERSION,MAJOR.MINOR.999).`

var versionDependPrefixFlag string
var versionDiffFlag bool

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version VERSION [paths...]",
		Short: "Update release versions",
		Long:  versionLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Version(cmd.Context(), domain.VersionArgs{
				ListArgs:     listArgs(args[1:]),
				Version:      args[0],
				DependPrefix: settings.DependPrefix,
				Diff:         versionDiffFlag,
			})
		},
	}
	cmd.Flags().StringVarP(&versionDependPrefixFlag, "depend-prefix", "d", "", "adjust local dependencies whose name starts with prefix")
	cmd.Flags().BoolVar(&versionDiffFlag, "diff", false, "show a diff of every change")

	return cmd
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
