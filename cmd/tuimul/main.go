// Package main provides the CLI entrypoint for tuimul.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/tuimul/internal/catalog"
	"github.com/verte-zerg/tuimul/internal/config"
	"github.com/verte-zerg/tuimul/internal/game"
	"github.com/verte-zerg/tuimul/internal/generator"
	"github.com/verte-zerg/tuimul/internal/logger"
	"github.com/verte-zerg/tuimul/internal/model"
	"github.com/verte-zerg/tuimul/internal/report"
	"github.com/verte-zerg/tuimul/internal/rps"
	"github.com/verte-zerg/tuimul/internal/store"
	"github.com/verte-zerg/tuimul/internal/tui"
)

const (
	defaultTable     = 1
	defaultQuestions = "5"
	defaultLogLevel  = "info"
	defaultLogFormat = "pretty"
)

var (
	playTable     int
	playQuestions string
	playSeed      int64
	logLevel      string
	logFormat     string

	tablesTable int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tuimul",
		Short:         "TUI times-table trainer",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPlayCmd,
	}

	rootCmd.Flags().IntVar(&playTable, "table", defaultTable, "times table to practice (1-12)")
	rootCmd.Flags().StringVar(&playQuestions, "questions", defaultQuestions, "questions per game: 5, 10, 20 or all")
	rootCmd.Flags().Int64Var(&playSeed, "seed", 0, "random seed (0 = time-based)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", defaultLogLevel, "log level (trace, debug, info, warn, error)")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newTablesCmd())
	rootCmd.AddCommand(newRPSCmd())

	return rootCmd
}

func runPlayCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	prefs, ok, err := st.LoadPreferences(context.Background())
	if err != nil {
		logErrf("failed to load preferences: %v\n", err)
	} else if ok {
		applyIntConfig(cmd, "table", &playTable, &prefs.Table)
		applyStringConfig(cmd, "questions", &playQuestions, &prefs.Questions)
	}
	applyIntConfig(cmd, "table", &playTable, fileCfg.Game.Table)
	applyStringConfig(cmd, "questions", &playQuestions, fileCfg.Game.Questions)
	applyInt64Config(cmd, "seed", &playSeed, fileCfg.Game.Seed)
	applyStringConfig(cmd, "log-level", &logLevel, fileCfg.Log.Level)
	logFormat = defaultLogFormat
	if fileCfg.Log.Format != nil {
		logFormat = *fileCfg.Log.Format
	}

	cfg := model.Config{
		Table:     playTable,
		Questions: playQuestions,
		Seed:      playSeed,
		LogLevel:  logLevel,
		LogFormat: logFormat,
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}
	settings, err := config.Settings(cfg)
	if err != nil {
		return err
	}

	log, closeLog := openLogger(cfg)
	defer closeLog()

	machine := game.New(catalog.Default(), generator.NewSeeded(cfg.Seed), game.WithLogger(log))
	program := tea.NewProgram(tui.NewModel(machine, settings, st, log), tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	if m, ok := final.(*tui.Model); ok {
		if snap := m.Snapshot(); snap.Phase == game.PhaseFinished {
			return report.RenderReview(cmd.OutOrStdout(), snap)
		}
	}
	return nil
}

func newTablesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tables",
		Short: "Print the times tables",
		Args:  cobra.NoArgs,
		RunE:  runTablesCmd,
	}
	cmd.Flags().IntVar(&tablesTable, "table", 0, "only print this table (1-12)")
	return cmd
}

func runTablesCmd(cmd *cobra.Command, _ []string) error {
	tables, err := selectTables(catalog.Default(), tablesTable)
	if err != nil {
		return err
	}
	return report.RenderTables(cmd.OutOrStdout(), tables)
}

func selectTables(tables []catalog.Table, factor int) ([]catalog.Table, error) {
	if factor == 0 {
		return tables, nil
	}
	table, ok := catalog.Lookup(tables, factor-catalog.MinFactor)
	if !ok {
		return nil, fmt.Errorf("--table must be between %d and %d", catalog.MinFactor, catalog.MaxFactor)
	}
	return []catalog.Table{table}, nil
}

func newRPSCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rps",
		Short: "Play rock-paper-scissors",
		Args:  cobra.NoArgs,
		RunE:  runRPSCmd,
	}
}

func runRPSCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "log-level", &logLevel, fileCfg.Log.Level)
	format := defaultLogFormat
	if fileCfg.Log.Format != nil {
		format = *fileCfg.Log.Format
	}
	log, closeLog := openLogger(model.Config{LogLevel: logLevel, LogFormat: format})
	defer closeLog()

	program := tea.NewProgram(tui.NewRPSModel(rps.New(), log), tea.WithAltScreen())
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
	if err := ensureConfigFile(path); err != nil {
		return err
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func ensureConfigFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}
	return nil
}

// openLogger writes logs to the state dir since the TUI owns the terminal.
func openLogger(cfg model.Config) (zerolog.Logger, func()) {
	f, err := logger.OpenFile(config.DefaultLogPath())
	if err != nil {
		logErrf("logging disabled: %v\n", err)
		return logger.Setup(io.Discard, cfg.LogLevel, cfg.LogFormat), func() {}
	}
	return logger.Setup(f, cfg.LogLevel, cfg.LogFormat), func() {
		if cerr := f.Close(); cerr != nil {
			// Best-effort close of the log file.
			_ = cerr
		}
	}
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

func applyInt64Config(cmd *cobra.Command, name string, target, value *int64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# tuimul configuration
# Uncomment a value to enable it. CLI flags override config values.

[game]
# table = %d              # Times table to practice (1-12)
# questions = %q         # Questions per game: "5", "10", "20" or "all"
# seed = 0               # Random seed (0 = time-based)

[log]
# level = %q         # trace, debug, info, warn, error
# format = %q      # pretty or json
`,
		defaultTable,
		defaultQuestions,
		defaultLogLevel,
		defaultLogFormat,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
