// Package cmd provides the root command and CLI setup for stamp.
package cmd

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/mouse-blink/stamp/internal/adapter"
	"github.com/mouse-blink/stamp/internal/config"
	"github.com/mouse-blink/stamp/internal/controller"
	"github.com/mouse-blink/stamp/internal/domain"
	m "github.com/mouse-blink/stamp/internal/model"
)

var workflow domain.Workflow
var ui controller.UI

// settings is the merged configuration of the running command.
var settings = &config.Config{}

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))

	listers := make(map[string]adapter.TrackedLister)
	for _, kind := range []string{adapter.ListerGoGit, adapter.ListerGit} {
		listers[kind] = lo.Must(adapter.NewTrackedLister(kind, "."))
	}

	workflow = domain.NewWorkflow(
		adapter.NewLocalSourceFSAdapter(),
		listers,
		adapter.NewTemplateProvider(),
		ui,
	)
}

var configFlag string
var verboseFlag bool
var debugFlag bool
var includeFlags []string
var excludeFlags []string
var gitUpdatesFlag bool
var listerFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stamp",
		Short: "Copyright header, manifest and release version maintenance",
		Long: `Stamp keeps the boilerplate of a source tree current: copyright headers,
the gem Manifest.txt and the version strings touched by a release.

Files are selected from version control (tracked files below the given
directories) plus any literal file arguments, then filtered by rules:
  - re:<regex>        regular expression on the relative path
  - gitignore:<file>  patterns from a gitignore style file
  - <glob>            doublestar glob when it contains * ? [ or {
  - <path>            exact path otherwise

Settings may also come from .stamp.yaml (searched upward from the working
directory) and STAMP_* environment variables.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			log.SetOutput(cmd.ErrOrStderr())
			log.SetLevel(logLevel())

			return loadSettings(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&configFlag, "config", "", "settings file (default: "+config.FileName+" in the working directory or a parent)")
	flags.BoolVarP(&verboseFlag, "verbose", "v", false, "log progress and show per-file detail")
	flags.BoolVar(&debugFlag, "debug", false, "log debug output")
	flags.StringArrayVarP(&includeFlags, "include", "i", nil, "only select files matching rule (can be repeated)")
	flags.StringArrayVarP(&excludeFlags, "exclude", "x", nil, "skip files matching rule (can be repeated)")
	flags.BoolVarP(&gitUpdatesFlag, "git-updates", "g", false, "also select modified and untracked files")
	flags.StringVar(&listerFlag, "lister", "", "tracked file lister: "+adapter.ListerGoGit+" or "+adapter.ListerGit)

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func logLevel() log.Level {
	switch {
	case debugFlag:
		return log.DebugLevel
	case verboseFlag:
		return log.InfoLevel
	default:
		return log.WarnLevel
	}
}

func loadSettings(cmd *cobra.Command) error {
	path := configFlag
	if path == "" {
		path, _ = config.FindConfig(".")
	}

	cfg, err := config.Load(path, cmd.Flags(), time.Now())
	if err != nil {
		return err
	}

	log.Debug("settings loaded", "config", path, "holder", cfg.Holder, "lister", cfg.Lister)

	settings = cfg

	return nil
}

func listArgs(args []string) domain.ListArgs {
	return domain.ListArgs{
		Paths:      parsePaths(args),
		Include:    settings.Include,
		Exclude:    settings.Exclude,
		GitUpdates: gitUpdatesFlag,
		Lister:     settings.Lister,
	}
}

func parsePaths(args []string) []m.Path {
	if len(args) == 0 {
		return nil
	}

	return lo.Map(args, func(arg string, _ int) m.Path {
		return m.Path(arg)
	})
}
