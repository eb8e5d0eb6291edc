package cmd

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/stamp/internal/domain"
)

const countLongDescription = `Count lines and code lines of the selected files.

Files are grouped as JAVA (*.java) or RUBY (*.rb, bin/*, init/*, Rakefile,
Gemfile, *.gemspec). Blank and comment lines are not code. Use --verbose
for a row per file. The default exclusions do not apply.`

var countParallelFlag int

// countCmd represents the count command.
var countCmd = newCountCmd()

func newCountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "count [paths...]",
		Short: "Count lines of code",
		Long:  countLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Count(cmd.Context(), domain.CountArgs{
				ListArgs: listArgs(args),
				Verbose:  verboseFlag,
				Threads:  countParallelFlag,
			})
		},
	}
	cmd.Flags().IntVarP(&countParallelFlag, "parallel", "p", runtime.NumCPU(), "number of files read in parallel")

	return cmd
}

func init() {
	rootCmd.AddCommand(countCmd)
}
