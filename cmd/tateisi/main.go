// Package main provides the CLI entrypoint for tateisi.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/tateisi/internal/config"
	"github.com/verte-zerg/tateisi/internal/model"
	"github.com/verte-zerg/tateisi/internal/readability"
	"github.com/verte-zerg/tateisi/internal/report"
	"github.com/verte-zerg/tateisi/internal/store"
	"github.com/verte-zerg/tateisi/internal/textsrc"
	"github.com/verte-zerg/tateisi/internal/tui"
)

const (
	defaultFormat      = model.FormatText
	defaultCurveWindow = 5
)

// Record sources.
const (
	sourceArg     = "arg"
	sourceDefault = "default"
	sourceFile    = "file"
	sourceStdin   = "stdin"
)

var (
	dbPath string

	scoreFile      string
	scoreFormat    string
	scoreLines     bool
	scoreShowStats bool
	scoreSave      bool

	historySource      string
	historySince       string
	historyLast        int
	historyCurveWindow int
	historyPlot        bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tateisi [text]",
		Short:         "Japanese readability score (Tateisi et al. 1988)",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runScoreCmd,
	}

	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "history database path (default: XDG data dir)")

	rootCmd.Flags().StringVarP(&scoreFile, "file", "f", "", "read text from a file ('-' for stdin)")
	rootCmd.Flags().StringVar(&scoreFormat, "format", defaultFormat, "output format: text, json or toml")
	rootCmd.Flags().BoolVar(&scoreLines, "lines", false, "score each non-blank line separately")
	rootCmd.Flags().BoolVar(&scoreShowStats, "stats", false, "print run statistics")
	rootCmd.Flags().BoolVar(&scoreSave, "save", false, "save scores to history")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newInspectCmd())

	return rootCmd
}

func runScoreCmd(cmd *cobra.Command, args []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "format", &scoreFormat, fileCfg.Score.Format)
	applyBoolConfig(cmd, "lines", &scoreLines, fileCfg.Score.Lines)
	applyBoolConfig(cmd, "stats", &scoreShowStats, fileCfg.Score.ShowStats)
	applyBoolConfig(cmd, "save", &scoreSave, fileCfg.Score.Save)

	cfg := model.Config{
		Text:      textsrc.DefaultText,
		File:      scoreFile,
		Format:    strings.ToLower(strings.TrimSpace(scoreFormat)),
		Lines:     scoreLines,
		ShowStats: scoreShowStats,
		Save:      scoreSave,
	}
	if fileCfg.Score.Text != nil {
		cfg.Text = *fileCfg.Score.Text
	}
	if err := validateConfig(cfg, args); err != nil {
		return err
	}

	text, source, err := readInput(cmd, cfg, args)
	if err != nil {
		return err
	}

	texts := []string{text}
	if cfg.Lines {
		texts = textsrc.SplitLines(text)
	}
	results := make([]readability.Result, 0, len(texts))
	for _, t := range texts {
		results = append(results, readability.Score(t))
	}

	if err := writeResults(cmd.OutOrStdout(), cfg, results); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if cfg.Save {
		return saveResults(cmd.Context(), results, source)
	}
	return nil
}

func readInput(cmd *cobra.Command, cfg model.Config, args []string) (string, string, error) {
	if cfg.File != "" {
		text, err := textsrc.Load(cfg.File, cmd.InOrStdin())
		if err != nil {
			return "", "", fmt.Errorf("failed to read input: %w", err)
		}
		if cfg.File == textsrc.StdinPath {
			return text, sourceStdin, nil
		}
		return text, sourceFile, nil
	}
	text, err := textsrc.FromArgs(args, cfg.Text)
	if err != nil {
		return "", "", fmt.Errorf("failed to decode argument: %w", err)
	}
	if len(args) == 0 {
		return text, sourceDefault, nil
	}
	return text, sourceArg, nil
}

func writeResults(w io.Writer, cfg model.Config, results []readability.Result) error {
	switch cfg.Format {
	case model.FormatJSON:
		return report.WriteJSON(w, results)
	case model.FormatTOML:
		return report.WriteTOML(w, results)
	}
	for i, res := range results {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := report.WriteResult(w, res); err != nil {
			return err
		}
		if cfg.ShowStats {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
			if err := report.WriteStatistics(w, res.Stats); err != nil {
				return err
			}
		}
	}
	return nil
}

func saveResults(ctx context.Context, results []readability.Result, source string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	st, err := openStore()
	if err != nil {
		return err
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	now := time.Now()
	for _, res := range results {
		id, err := st.InsertScore(ctx, model.NewScoreRecord(res, source, now))
		if err != nil {
			return fmt.Errorf("failed to save score: %w", err)
		}
		logErrf("Saved score #%d\n", id)
	}
	return nil
}

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show saved scores",
		Args:  cobra.NoArgs,
		RunE:  runHistoryCmd,
	}
	cmd.Flags().StringVar(&historySource, "source", "", "source filter (arg, default, file, stdin, inspect)")
	cmd.Flags().StringVar(&historySince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&historyLast, "last", 0, "limit to last N scores")
	cmd.Flags().IntVar(&historyCurveWindow, "curve-window", defaultCurveWindow, "moving average window for --plot")
	cmd.Flags().BoolVar(&historyPlot, "plot", false, "plot the score trend")
	return cmd
}

func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "last", &historyLast, fileCfg.History.Last)
	applyIntConfig(cmd, "curve-window", &historyCurveWindow, fileCfg.History.CurveWindow)
	applyBoolConfig(cmd, "plot", &historyPlot, fileCfg.History.Plot)

	var sinceTime *time.Time
	if historySince != "" {
		parsed, err := time.ParseInLocation("2006-01-02", historySince, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --since value: %w", err)
		}
		sinceTime = &parsed
	}
	if historyLast < 0 {
		return fmt.Errorf("--last must be >= 0")
	}

	cfg := model.HistoryConfig{
		Source:      historySource,
		Since:       sinceTime,
		Last:        historyLast,
		CurveWindow: historyCurveWindow,
		Plot:        historyPlot,
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	records, err := st.ListScores(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}

	out := cmd.OutOrStdout()
	if err := report.WriteHistory(out, records); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := report.WriteSummary(out, records); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if cfg.Plot {
		if err := report.WriteTrend(out, records, cfg.CurveWindow, 0); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [text]",
		Short: "Edit text and watch its score update live",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runInspectCmd,
	}
}

func runInspectCmd(_ *cobra.Command, args []string) error {
	text, err := textsrc.FromArgs(args, textsrc.DefaultText)
	if err != nil {
		return fmt.Errorf("failed to decode argument: %w", err)
	}

	var saver tui.Saver
	st, err := openStore()
	if err != nil {
		logErrf("history disabled: %v\n", err)
	} else {
		saver = st
		defer func() {
			if cerr := st.Close(); cerr != nil {
				logErrf("failed to close db: %v\n", cerr)
			}
		}()
	}

	program := tea.NewProgram(tui.NewModel(saver, text), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := writeConfigTemplate(path); err != nil {
		return err
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

// writeConfigTemplate creates the config file unless it already exists.
func writeConfigTemplate(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat config: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func openStore() (*store.Store, error) {
	path := dbPath
	if path == "" {
		path = config.DefaultDBPath()
	}
	st, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	return st, nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# tateisi configuration
# Uncomment a value to enable it. CLI flags override config values.

[score]
# text = %q       # Text scored when no argument is given
# format = %q           # Output format: text, json or toml
# lines = false             # Score each non-blank line separately
# show-stats = false        # Print run statistics
# save = false              # Save every score to history

[history]
# last = 0                  # Limit to last N scores (0 = all)
# curve-window = %d          # Moving average window for --plot
# plot = false              # Plot the score trend
`,
		textsrc.DefaultText,
		defaultFormat,
		defaultCurveWindow,
	)
}

func validateConfig(cfg model.Config, args []string) error {
	switch cfg.Format {
	case model.FormatText, model.FormatJSON, model.FormatTOML:
	default:
		return fmt.Errorf("--format must be one of text, json, toml")
	}
	if cfg.File != "" && len(args) > 0 {
		return fmt.Errorf("--file cannot be combined with a text argument")
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
