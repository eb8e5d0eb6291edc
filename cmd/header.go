package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/stamp/internal/adapter"
	"github.com/mouse-blink/stamp/internal/domain"
)

const headerLongDescription = `Check the copyright header of each selected file.

Every file is reported with one state:
  GOOD   header present with the expected years and holder
  NONE   no copyright line found
  DATE   copyright line is stale
  EMPTY  file has no content
  WROTE  header inserted or stale line rewritten (--write)

The header is placed after any shebang, <?xml declaration, editor mode or
encoding comment. Years run from --inception to the current year.`

var headerWriteFlag bool
var headerHolderFlag string
var headerInceptionFlag int
var headerLicenseFlag string
var headerLenientFlag bool
var headerDiffFlag bool
var headerStrictFlag bool

// headerCmd represents the header command.
var headerCmd = newHeaderCmd()

func newHeaderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "header [paths...]",
		Short: "Check or write copyright headers",
		Long:  headerLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Headers(cmd.Context(), domain.HeaderArgs{
				ListArgs:     listArgs(args),
				Holder:       settings.Holder,
				Inception:    settings.Inception,
				License:      settings.License,
				LenientYears: settings.LenientYears,
				Write:        headerWriteFlag,
				Diff:         headerDiffFlag,
				Strict:       headerStrictFlag,
			})
		},
	}
	cmd.Flags().BoolVarP(&headerWriteFlag, "write", "w", false, "insert missing headers and fix stale ones")
	cmd.Flags().StringVar(&headerHolderFlag, "holder", "", "copyright holder")
	cmd.Flags().IntVar(&headerInceptionFlag, "inception", 0, "first copyright year (default: current year)")
	cmd.Flags().StringVar(&headerLicenseFlag, "license", "", "license template ("+strings.Join(adapter.Licenses(), ", ")+") or license text")
	cmd.Flags().BoolVar(&headerLenientFlag, "lenient-years", false, "accept the start year found in the file")
	cmd.Flags().BoolVar(&headerDiffFlag, "diff", false, "show a diff of every change")
	cmd.Flags().BoolVar(&headerStrictFlag, "strict", false, "fail when any file is NONE, DATE or unreadable")

	return cmd
}

func init() {
	rootCmd.AddCommand(headerCmd)
}
