package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/winequiz/internal/grading"
	"github.com/abhisek/winequiz/internal/quiz"
	"github.com/abhisek/winequiz/internal/tasting"
	"github.com/abhisek/winequiz/internal/ui/components"
	"github.com/abhisek/winequiz/internal/ui/theme"
)

var gradeCmd = &cobra.Command{
	Use:   "grade <wine-id>",
	Short: "Grade picks for a wine without the TUI",
	Long: `Grade picks for a wine without the TUI.

Each --pick names a category and its comma-separated labels:

  winequiz grade pinot-bourgogne --pick "色調=ルビー" --pick "清澄度=澄んだ"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, cfg, err := loadEngine(cmd)
		if err != nil {
			return err
		}
		raw, _ := cmd.Flags().GetStringArray("pick")
		picks, err := parsePicks(raw)
		if err != nil {
			return err
		}

		report, err := gradeWine(engine, cfg, args[0], picks, cmd.ErrOrStderr())
		if err != nil {
			return err
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		}
		writeGrade(cmd.OutOrStdout(), report)
		return nil
	},
}

func init() {
	gradeCmd.Flags().StringArrayP("pick", "p", nil, `Picks for one category, as "category=label,label"`)
	gradeCmd.Flags().Bool("json", false, "Print the result as JSON")
}

// pick is one category's labels in command-line order.
type pick struct {
	Category tasting.Category
	Labels   []string
}

// parsePicks parses "category=label,label" arguments. Repeated categories
// are merged.
func parsePicks(args []string) ([]pick, error) {
	var out []pick
	index := map[tasting.Category]int{}
	for _, arg := range args {
		name, list, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --pick %q: want category=label,label", arg)
		}
		cat := tasting.Category(strings.TrimSpace(name))
		if !tasting.IsKnown(cat) {
			return nil, fmt.Errorf("invalid --pick %q: unknown category %q", arg, cat)
		}
		var labels []string
		for _, l := range strings.Split(list, ",") {
			if l = strings.TrimSpace(l); l != "" {
				labels = append(labels, l)
			}
		}
		if i, seen := index[cat]; seen {
			out[i].Labels = append(out[i].Labels, labels...)
			continue
		}
		index[cat] = len(out)
		out = append(out, pick{Category: cat, Labels: labels})
	}
	return out, nil
}

type gradeReport struct {
	SessionID  string           `json:"sessionId"`
	WineID     string           `json:"wineId"`
	Wine       string           `json:"wine"`
	Categories []categoryReport `json:"categories"`
	Summary    summaryReport    `json:"summary"`
}

type categoryReport struct {
	Category      string          `json:"category"`
	Picked        []string        `json:"picked"`
	CorrectPicked int             `json:"correctPicked"`
	CorrectTotal  int             `json:"correctTotal"`
	Options       []verdictReport `json:"options"`
}

type verdictReport struct {
	Label   string `json:"label"`
	Verdict string `json:"verdict"`

	verdict grading.Verdict
}

type summaryReport struct {
	Categories    int `json:"categories"`
	Perfect       int `json:"perfect"`
	CorrectPicked int `json:"correctPicked"`
	CorrectTotal  int `json:"correctTotal"`
}

// gradeWine applies picks to a fresh session on wineID and grades every
// category. Picks are a set, so a label named twice is still picked.
// Labels that are not options of their category are reported on
// warn and skipped.
func gradeWine(engine *quiz.Engine, cfg quiz.Config, wineID string, picks []pick, warn io.Writer) (*gradeReport, error) {
	sess, err := quiz.NewSession(engine, cfg)
	if err != nil {
		return nil, err
	}
	if !sess.SelectWine(wineID) {
		return nil, fmt.Errorf("unknown wine %q (see winequiz list)", wineID)
	}

	for _, p := range picks {
		if _, ok := sess.State(p.Category); !ok {
			fmt.Fprintf(warn, "warning: %s is not asked for this wine, ignored\n", p.Category)
			continue
		}
		for _, label := range tasting.Dedup(p.Labels) {
			if !sess.Toggle(p.Category, label) {
				fmt.Fprintf(warn, "warning: %s: %q is not an option, ignored\n", p.Category, label)
			}
		}
	}
	sess.RevealAll()

	w := sess.Wine()
	report := &gradeReport{SessionID: sess.ID, WineID: w.ID, Wine: w.Label()}
	for _, st := range sess.View() {
		cr := categoryReport{
			Category:      string(st.Category),
			Picked:        st.Picked,
			CorrectPicked: st.Result.Tally.CorrectPicked,
			CorrectTotal:  st.Result.Tally.CorrectTotal,
		}
		if cr.Picked == nil {
			cr.Picked = []string{}
		}
		for _, ov := range st.Result.Verdicts {
			cr.Options = append(cr.Options, verdictReport{Label: ov.Label, Verdict: ov.Verdict.String(), verdict: ov.Verdict})
		}
		report.Categories = append(report.Categories, cr)
	}

	sum := sess.Summary()
	report.Summary = summaryReport{
		Categories:    sum.Categories,
		Perfect:       sum.Perfect,
		CorrectPicked: sum.CorrectPicked,
		CorrectTotal:  sum.CorrectTotal,
	}
	return report, nil
}

func writeGrade(w io.Writer, r *gradeReport) {
	fmt.Fprintln(w, lipgloss.NewStyle().Bold(true).Render(r.Wine))
	for _, c := range r.Categories {
		score := fmt.Sprintf("%d/%d", c.CorrectPicked, c.CorrectTotal)
		if c.CorrectTotal > 0 && c.CorrectPicked == c.CorrectTotal {
			score = theme.Correct.Render(score)
		}
		fmt.Fprintf(w, "%s  %s\n", c.Category, score)

		var marks []string
		for _, o := range c.Options {
			v := o.verdict
			if v == grading.Neutral {
				continue
			}
			marks = append(marks, components.VerdictStyle(v).Render(v.Symbol()+" "+o.Label))
		}
		if len(marks) > 0 {
			fmt.Fprintf(w, "  %s\n", strings.Join(marks, "  "))
		}
	}
	s := r.Summary
	fmt.Fprintf(w, "\n%d/%d correct, %d of %d categories perfect\n",
		s.CorrectPicked, s.CorrectTotal, s.Perfect, s.Categories)
}
