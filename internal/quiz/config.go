package quiz

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Mode selects how the next wine is chosen.
type Mode int

const (
	ModeRandom Mode = iota // Next picks a random wine
	ModeManual             // Next re-deals the manually chosen wine
)

func (m Mode) String() string {
	switch m {
	case ModeManual:
		return "manual"
	default:
		return "random"
	}
}

// DisplayName returns the Japanese label of the mode.
func (m Mode) DisplayName() string {
	switch m {
	case ModeManual:
		return "手動選択"
	default:
		return "ランダム"
	}
}

// ParseMode parses "random" or "manual".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "random", "":
		return ModeRandom, nil
	case "manual":
		return ModeManual, nil
	}
	return ModeRandom, fmt.Errorf("invalid mode %q: must be random or manual", s)
}

// Config holds quiz session configuration.
type Config struct {
	// DatasetPath points at a JSON dataset. Empty uses the bundled dataset.
	DatasetPath string

	// ShowCountHint shows the number of correct labels on unrevealed
	// categories. Default: true.
	ShowCountHint bool

	// Mode is the wine selection mode. Default: random.
	Mode Mode

	// Seed seeds random wine selection. Zero picks a random seed.
	Seed uint64
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		ShowCountHint: true,
		Mode:          ModeRandom,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values. An unparseable value is an error.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if p := os.Getenv("WINEQUIZ_DATASET"); p != "" {
		cfg.DatasetPath = p
	}
	if h := os.Getenv("WINEQUIZ_COUNT_HINT"); h != "" {
		switch strings.ToLower(h) {
		case "0", "false", "off", "no":
			cfg.ShowCountHint = false
		case "1", "true", "on", "yes":
			cfg.ShowCountHint = true
		default:
			return cfg, fmt.Errorf("WINEQUIZ_COUNT_HINT: invalid value %q", h)
		}
	}
	if m := os.Getenv("WINEQUIZ_MODE"); m != "" {
		mode, err := ParseMode(m)
		if err != nil {
			return cfg, fmt.Errorf("WINEQUIZ_MODE: %w", err)
		}
		cfg.Mode = mode
	}
	if s := os.Getenv("WINEQUIZ_SEED"); s != "" {
		seed, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("WINEQUIZ_SEED: %w", err)
		}
		cfg.Seed = seed
	}

	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	switch c.Mode {
	case ModeRandom, ModeManual:
	default:
		return fmt.Errorf("unknown mode: %d", c.Mode)
	}
	return nil
}
