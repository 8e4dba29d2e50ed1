package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/winequiz/internal/app"
	"github.com/abhisek/winequiz/internal/quiz"
)

// runApp loads the dataset, starts a session, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	engine, cfg, err := loadEngine(cmd)
	if err != nil {
		return err
	}
	sess, err := quiz.NewSession(engine, cfg)
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	return app.Run(app.Options{Session: sess})
}
