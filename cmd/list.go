package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/abhisek/winequiz/internal/dataset"
	"github.com/abhisek/winequiz/internal/tasting"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the wines in the dataset, whites first",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		ds, err := loadDataset(cmd, cfg)
		if err != nil {
			return err
		}
		writeList(cmd.OutOrStdout(), ds)
		return nil
	},
}

func writeList(w io.Writer, ds *dataset.Dataset) {
	groups := []struct {
		color tasting.Color
		wines []tasting.WineProfile
	}{
		{tasting.ColorWhite, ds.Whites()},
		{tasting.ColorRed, ds.Reds()},
	}
	for i, g := range groups {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s (%d)\n", g.color.DisplayName(), len(g.wines))
		for _, wine := range g.wines {
			fmt.Fprintf(w, "  %-24s  %s\n", wine.ID, wine.Label())
		}
	}
	fmt.Fprintf(w, "\n%d wines\n", ds.Len())
}
