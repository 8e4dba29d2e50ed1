package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/winequiz/internal/quiz"
	"github.com/abhisek/winequiz/internal/tasting"
)

var showCmd = &cobra.Command{
	Use:   "show <wine-id>",
	Short: "Show the tasting sheet and answer key for a wine",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, _, err := loadEngine(cmd)
		if err != nil {
			return err
		}
		w, ok := engine.Dataset().Lookup(args[0])
		if !ok {
			return fmt.Errorf("unknown wine %q (see winequiz list)", args[0])
		}
		writeShow(cmd.OutOrStdout(), w, engine.Board(w))
		return nil
	},
}

func writeShow(out io.Writer, w tasting.WineProfile, board []quiz.CategoryView) {
	fmt.Fprintf(out, "%s  %s\n", w.Color().DisplayName(), w.Label())
	if w.Summary != "" {
		fmt.Fprintln(out, w.Summary)
	}
	fmt.Fprintln(out, strings.Repeat("─", 60))

	var section tasting.Section
	for _, v := range board {
		if v.Section != section {
			fmt.Fprintf(out, "\n【%s】\n", v.Section)
			section = v.Section
		}
		fmt.Fprintf(out, "%s (正解 %d)\n", v.Category, v.Hint)
		fmt.Fprintf(out, "  選択肢: %s\n", strings.Join(v.Options, " / "))
		if len(v.Detail.Correct) > 0 {
			fmt.Fprintf(out, "  正解:   %s\n", strings.Join(v.Detail.Correct, " / "))
		}
		if len(v.Detail.AlsoAccept) > 0 {
			fmt.Fprintf(out, "  許容:   %s\n", strings.Join(v.Detail.AlsoAccept, " / "))
		}
		if v.Detail.Note != "" {
			fmt.Fprintf(out, "  解説:   %s\n", v.Detail.Note)
		}
		if v.Detail.ExamTip != "" {
			fmt.Fprintf(out, "  試験:   %s\n", v.Detail.ExamTip)
		}
	}

	if w.Notes != "" {
		fmt.Fprintf(out, "\n%s\n", w.Notes)
	}
	for _, c := range w.Confusions {
		fmt.Fprintf(out, "\nvs %s\n", c.With)
		for _, cue := range c.Cues {
			fmt.Fprintf(out, "  ・%s\n", cue)
		}
		for _, p := range c.Pitfalls {
			fmt.Fprintf(out, "  ⚠ %s\n", p)
		}
	}
}
