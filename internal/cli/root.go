package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/kolovorot/internal/infra/logger"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type rootOptions struct {
	workspace string
	debug     bool
	cleanup   func() error
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "kolovorot",
		Short:        "Kolovorot: folk calendar builder from an ethnographic corpus",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			opts.setupLogger()
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if opts.cleanup != nil {
				return opts.cleanup()
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable verbose logging to .kolovorot/logs/kolovorot.log")

	cmd.AddCommand(
		initCmd(),
		extractCmd(opts),
		buildCmd(opts),
		importCmd(opts),
		showCmd(opts),
		inspectCmd(opts),
		browseCmd(opts),
		daysCmd(),
		versionCmd(),
	)
	return cmd
}

// setupLogger writes logs under the workspace when one is found, else under
// the working directory. Logging failures never stop a command.
func (o *rootOptions) setupLogger() {
	logRoot := strings.TrimSpace(o.workspace)
	if logRoot == "" {
		wd, err := os.Getwd()
		if err != nil {
			wd = "."
		}
		logRoot, _ = filepath.Abs(wd)
		if root, ferr := defaultWorkspaceDeps().locator.FindRoot(logRoot); ferr == nil && root != "" {
			logRoot = root
		}
	}

	cleanup, err := logger.Setup(logger.Config{
		Root:  logRoot,
		Debug: o.debug,
	})
	if err == nil {
		o.cleanup = cleanup
	}
}
