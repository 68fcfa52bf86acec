package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/kolovorot/internal/domain"
	"github.com/aalvaropc/kolovorot/internal/usecase/inspect"
)

func inspectCmd(root *rootOptions) *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "inspect <jsonpath>...",
		Short: "Query the saved event bucket with JSONPath expressions",
		Example: `  kolovorot inspect '$["24.12"][*].event_name'
  kolovorot inspect '$["07.01"][?(@.is_pagan == true)].source_file'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			ws, err := loadWorkspace(root.workspace)
			if err != nil {
				return err
			}

			path := ws.buckets.Path()
			body, err := os.ReadFile(path)
			if err != nil {
				return &domain.OpError{Op: "cli.inspect", Kind: domain.KindNotFound, Path: path, Err: err}
			}

			results := inspect.Apply(body, args)
			if err := printInspect(cmd.OutOrStdout(), results, format); err != nil {
				return err
			}
			if n := countFailed(results); n > 0 {
				return fmt.Errorf("%d of %d queries matched nothing", n, len(results))
			}
			return nil
		},
	}

	c.Flags().StringVar(&format, "format", formatPretty, "Output format: pretty|json")
	return c
}

func printInspect(w io.Writer, results []inspect.Result, format string) error {
	if format == formatJSON {
		return writeJSON(w, results)
	}
	for _, r := range results {
		if r.OK {
			fmt.Fprintf(w, "✓ %s\n  %s\n", r.Expr, r.Value)
			continue
		}
		fmt.Fprintf(w, "✗ %s\n  %s\n", r.Expr, r.Message)
	}
	return nil
}

func countFailed(results []inspect.Result) int {
	n := 0
	for _, r := range results {
		if !r.OK {
			n++
		}
	}
	return n
}
