package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/abhisek/winequiz/internal/dataset"
	"github.com/abhisek/winequiz/internal/tasting"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Load the dataset and report dropped answers and lint findings",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		ds, err := dataset.Load(cfg.DatasetPath)
		if err != nil {
			return fmt.Errorf("load dataset: %w", err)
		}
		strict, _ := cmd.Flags().GetBool("strict")
		n := writeValidate(cmd.OutOrStdout(), ds, dataset.Lint(ds, tasting.DefaultFixedTable()))
		if strict && n > 0 {
			return fmt.Errorf("%d problems found", n)
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().Bool("strict", false, "Exit with an error if anything was dropped or flagged")
}

// writeValidate prints the dataset report and lint findings and returns
// how many problems it printed.
func writeValidate(w io.Writer, ds *dataset.Dataset, findings []dataset.Finding) int {
	version := ds.SchemaVersion()
	if version == "" {
		version = "(unversioned)"
	}
	fmt.Fprintf(w, "%d wines (%d white, %d red), schema %s\n",
		ds.Len(), len(ds.Whites()), len(ds.Reds()), version)

	r := ds.Report()
	for _, d := range r.Drops {
		fmt.Fprintf(w, "drop     %s\n", d)
	}
	for _, msg := range r.Warnings {
		fmt.Fprintf(w, "warning  %s\n", msg)
	}
	for _, f := range findings {
		fmt.Fprintf(w, "lint     %s\n", f)
	}

	n := len(r.Drops) + len(r.Warnings) + len(findings)
	if n == 0 {
		fmt.Fprintln(w, "ok")
	} else {
		fmt.Fprintf(w, "%d problems\n", n)
	}
	return n
}
