package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/kolovorot/internal/infra/fsworkspace"
	"github.com/aalvaropc/kolovorot/internal/usecase"
)

func initCmd() *cobra.Command {
	var path string
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create a Kolovorot workspace (corpus/, data/, out/, kolovorot.yaml)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("invalid path: %w", err)
			}

			uc := usecase.NewInitWorkspace(fsworkspace.NewInitializer())
			if err := uc.Execute(root, force); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Workspace ready at %s\n", root)
			return nil
		},
	}

	c.Flags().StringVar(&path, "path", ".", "Directory to initialize")
	c.Flags().BoolVar(&force, "force", false, "Overwrite existing template files")
	return c
}
