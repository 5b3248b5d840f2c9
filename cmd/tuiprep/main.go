// Package main provides the CLI entrypoint for tuiprep.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/tuiprep/internal/bank"
	"github.com/verte-zerg/tuiprep/internal/config"
	"github.com/verte-zerg/tuiprep/internal/console"
	"github.com/verte-zerg/tuiprep/internal/feedback"
	"github.com/verte-zerg/tuiprep/internal/model"
	"github.com/verte-zerg/tuiprep/internal/review"
	"github.com/verte-zerg/tuiprep/internal/session"
	"github.com/verte-zerg/tuiprep/internal/tui"
)

const (
	dotEnvPath          = ".env"
	terminalWidthBackup = 80
)

var (
	practiceCategory string
	practiceBank     string
	practicePlain    bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tuiprep",
		Short:         "TUI mock interview practice",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPracticeCmd,
	}

	rootCmd.Flags().StringVar(&practiceCategory, "category", "", "category to practice: HR, Technical, Interpersonal or 1-3")
	rootCmd.Flags().BoolVar(&practicePlain, "plain", false, "use line-based prompts instead of the TUI")
	rootCmd.PersistentFlags().StringVar(&practiceBank, "bank", "", "YAML question bank overriding built-in questions")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newCategoriesCmd())
	rootCmd.AddCommand(newQuestionsCmd())

	return rootCmd
}

func runPracticeCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadPracticeConfig(cmd)
	if err != nil {
		return err
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}

	var preset model.Category
	if cfg.Category != "" {
		preset, err = bank.ParseCategory(cfg.Category)
		if err != nil {
			return fmt.Errorf("invalid --category: %w", err)
		}
	}

	b, err := loadBank(cfg.BankPath)
	if err != nil {
		return err
	}
	sess := session.New(b, feedback.Local{})

	if cfg.Plain {
		runner := console.NewRunner(b, sess, cmd.InOrStdin(), cmd.OutOrStdout())
		return runner.Run(preset)
	}

	m := tui.NewModel(b, sess, preset)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// loadPracticeConfig merges settings with flags first, then environment, then the config file.
func loadPracticeConfig(cmd *cobra.Command) (model.Config, error) {
	if err := config.LoadDotEnv(dotEnvPath); err != nil {
		logErrf("ignoring %s: %v\n", dotEnvPath, err)
	}
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	practiceCfg, err := config.ApplyEnv(fileCfg.Practice)
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "category", &practiceCategory, practiceCfg.Category)
	applyStringConfig(cmd, "bank", &practiceBank, practiceCfg.Bank)
	applyBoolConfig(cmd, "plain", &practicePlain, practiceCfg.Plain)

	return model.Config{
		Category: strings.TrimSpace(practiceCategory),
		BankPath: strings.TrimSpace(practiceBank),
		Plain:    practicePlain,
	}, nil
}

func loadBank(path string) (*bank.Bank, error) {
	if path != "" {
		b, err := bank.Load(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load question bank: %w", err)
		}
		return b, nil
	}
	defaultPath := config.DefaultBankPath()
	if _, err := os.Stat(defaultPath); err != nil {
		if os.IsNotExist(err) {
			return bank.Default(), nil
		}
		return nil, fmt.Errorf("failed to stat question bank: %w", err)
	}
	b, err := bank.Load(defaultPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load question bank: %w", err)
	}
	logErrf("Using question bank %s\n", defaultPath)
	return b, nil
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

func newCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List question categories",
		Args:  cobra.NoArgs,
		RunE:  runCategoriesCmd,
	}
}

func runCategoriesCmd(cmd *cobra.Command, _ []string) error {
	for _, cat := range bank.Default().Categories() {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), cat); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newQuestionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "questions [category]",
		Short: "Print the question bank",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runQuestionsCmd,
	}
}

func runQuestionsCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadPracticeConfig(cmd)
	if err != nil {
		return err
	}
	b, err := loadBank(cfg.BankPath)
	if err != nil {
		return err
	}

	cats := b.Categories()
	if len(args) == 1 {
		cat, err := bank.ParseCategory(args[0])
		if err != nil {
			return err
		}
		cats = []model.Category{cat}
	}
	lines, err := questionLines(b, cats)
	if err != nil {
		return err
	}
	width := 0
	if isTerminal(os.Stdout) {
		width = terminalWidth()
	}
	for _, line := range review.TruncateLines(lines, width) {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func questionLines(b *bank.Bank, cats []model.Category) ([]string, error) {
	var rows [][]string
	for _, cat := range cats {
		qs, err := b.Questions(cat)
		if err != nil {
			return nil, err
		}
		for i, q := range qs {
			rows = append(rows, []string{string(cat), strconv.Itoa(i + 1), q})
		}
	}
	return review.FormatTable([]string{"Category", "#", "Question"}, rows, map[int]bool{1: true}), nil
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}

func isTerminal(file *os.File) bool {
	return term.IsTerminal(int(file.Fd()))
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
	return fmt.Sprintf(`# tuiprep configuration
# Uncomment a value to enable it. CLI flags override environment (%s, %s, %s),
# which overrides config values.

[practice]
# category = "HR"         # Skip the selector: HR, Technical or Interpersonal
# bank = %q   # YAML question bank overriding built-in questions
# plain = false           # Use line-based prompts instead of the TUI
`,
		config.EnvCategory,
		config.EnvBank,
		config.EnvPlain,
		config.DefaultBankPath(),
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.BankPath != "" {
		info, err := os.Stat(cfg.BankPath)
		if err != nil {
			return fmt.Errorf("--bank: %w", err)
		}
		if info.IsDir() {
			return fmt.Errorf("--bank must be a file, got directory %s", cfg.BankPath)
		}
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
