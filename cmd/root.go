package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/abhisek/winequiz/internal/dataset"
	"github.com/abhisek/winequiz/internal/quiz"
	"github.com/abhisek/winequiz/internal/tasting"
)

var rootCmd = &cobra.Command{
	Use:   "winequiz",
	Short: "Sommelier tasting-sheet quiz",
	Long:  "Winequiz is a terminal quiz for practicing the sommelier exam tasting sheet.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	addConfigFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(gradeCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd)
}

func addConfigFlags(fs *pflag.FlagSet) {
	fs.String("dataset", "", "Path to a JSON wine dataset (overrides WINEQUIZ_DATASET env var)")
	fs.Bool("no-hint", false, "Hide the number of correct labels (overrides WINEQUIZ_COUNT_HINT)")
	fs.String("mode", "", "Wine selection mode: random or manual (overrides WINEQUIZ_MODE)")
	fs.Uint64("seed", 0, "Seed for random wine selection (overrides WINEQUIZ_SEED)")
	fs.BoolP("verbose", "v", false, "Print every dropped answer and dataset warning")
}

// resolveConfig returns the quiz configuration with flags taking priority
// over WINEQUIZ_* env vars, then defaults.
func resolveConfig(cmd *cobra.Command) (quiz.Config, error) {
	cfg, err := quiz.ConfigFromEnv()
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if p, _ := flags.GetString("dataset"); p != "" {
		cfg.DatasetPath = p
	}
	if noHint, _ := flags.GetBool("no-hint"); noHint {
		cfg.ShowCountHint = false
	}
	if flags.Changed("mode") {
		m, _ := flags.GetString("mode")
		mode, err := quiz.ParseMode(m)
		if err != nil {
			return cfg, err
		}
		cfg.Mode = mode
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetUint64("seed")
	}

	return cfg, cfg.Validate()
}

// loadDataset loads the configured dataset and reports what normalization
// dropped on stderr.
func loadDataset(cmd *cobra.Command, cfg quiz.Config) (*dataset.Dataset, error) {
	ds, err := dataset.Load(cfg.DatasetPath)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	verbose, _ := cmd.Flags().GetBool("verbose")
	reportDataset(cmd.ErrOrStderr(), ds.Report(), verbose)
	return ds, nil
}

func reportDataset(w io.Writer, r dataset.Report, verbose bool) {
	if r.Empty() {
		return
	}
	if !verbose {
		fmt.Fprintf(w, "warning: dataset: %d answers dropped, %d warnings (use --verbose for details)\n",
			len(r.Drops), len(r.Warnings))
		return
	}
	for _, d := range r.Drops {
		fmt.Fprintf(w, "warning: dropped %s\n", d)
	}
	for _, msg := range r.Warnings {
		fmt.Fprintf(w, "warning: %s\n", msg)
	}
}

// loadEngine resolves configuration and builds the quiz engine.
func loadEngine(cmd *cobra.Command) (*quiz.Engine, quiz.Config, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, cfg, err
	}
	ds, err := loadDataset(cmd, cfg)
	if err != nil {
		return nil, cfg, err
	}
	engine, err := quiz.NewEngine(ds, tasting.DefaultFixedTable())
	if err != nil {
		return nil, cfg, err
	}
	return engine, cfg, nil
}
