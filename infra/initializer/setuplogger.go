package initializer

import (
	"log/slog"
	"os"

	"github.com/amirasaad/exchange/pkg/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

type levelStyle struct {
	level log.Level
	icon  string
	color lipgloss.AdaptiveColor
}

var levelStyles = []levelStyle{
	{log.DebugLevel, "DBG", lipgloss.AdaptiveColor{Light: "#5E35B1", Dark: "#B39DDB"}},
	{log.InfoLevel, "INF", lipgloss.AdaptiveColor{Light: "#00897B", Dark: "#04B575"}},
	{log.WarnLevel, "WRN", lipgloss.AdaptiveColor{Light: "#F57F17", Dark: "#FFD54F"}},
	{log.ErrorLevel, "ERR", lipgloss.AdaptiveColor{Light: "#C62828", Dark: "#FF6B6B"}},
}

var formatters = map[string]log.Formatter{
	"json": log.JSONFormatter,
	"text": log.TextFormatter,
}

func newStyles() *log.Styles {
	styles := log.DefaultStyles()
	for _, ls := range levelStyles {
		styles.Levels[ls.level] = lipgloss.NewStyle().
			SetString(ls.icon).
			Bold(true).
			Padding(0, 1).
			Foreground(ls.color)
	}
	keyColor := levelStyles[0].color
	for _, key := range []string{"context", "from", "to", "username", "took"} {
		styles.Keys[key] = lipgloss.NewStyle().Foreground(keyColor)
	}
	styles.Keys["error"] = lipgloss.NewStyle().Foreground(levelStyles[3].color)
	styles.Values["error"] = lipgloss.NewStyle().Bold(true)
	return styles
}

// setupLogger builds the process logger and installs it as the slog default.
func setupLogger(cfg *config.Log) *slog.Logger {
	if cfg == nil {
		cfg = &config.Log{Format: "text"}
	}
	formatter, ok := formatters[cfg.Format]
	if !ok {
		formatter = log.TextFormatter
	}

	handler := log.NewWithOptions(os.Stdout, log.Options{
		ReportCaller:    true,
		ReportTimestamp: true,
		TimeFormat:      cfg.TimeFormat,
		Level:           log.Level(cfg.Level),
		Prefix:          cfg.Prefix,
		Formatter:       formatter,
	})
	handler.SetStyles(newStyles())

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
