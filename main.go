// Package main provides the CLI entrypoint for go-match.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"go-match/internal/config"
	"go-match/internal/deck"
	"go-match/internal/game"
	"go-match/internal/schedule"
	"go-match/internal/scoring"
	"go-match/internal/state"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const (
	defaultPairs    = 8
	defaultMinPairs = 2
	defaultMaxPairs = 20
)

var (
	boardPairs    int
	boardMinPairs int
	boardMaxPairs int
	revealDelay   time.Duration
	faceFiles     []string
	seed          uint64
	noMouse       bool
)

func main() {
	_ = godotenv.Load()

	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "go-match",
		Short:         "Memory matching card game for the terminal",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE:          runGameCmd,
	}

	rootCmd.Flags().IntVar(&boardPairs, "pairs", defaultPairs, "pairs on the first board (0 asks for a size)")
	rootCmd.Flags().IntVar(&boardMinPairs, "min-pairs", defaultMinPairs, "smallest board size accepted")
	rootCmd.Flags().IntVar(&boardMaxPairs, "max-pairs", defaultMaxPairs, "largest board size accepted")
	rootCmd.Flags().DurationVar(&revealDelay, "delay", state.DefaultRevealDelay, "how long a resolved turn stays visible")
	rootCmd.Flags().Uint64Var(&seed, "seed", 0, "shuffle seed (0 picks one at random)")
	rootCmd.Flags().BoolVar(&noMouse, "no-mouse", false, "disable mouse input")
	rootCmd.PersistentFlags().StringSliceVar(&faceFiles, "faces", nil, "face catalog files or directories")

	rootCmd.AddCommand(newFacesCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runGameCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "pairs", &boardPairs, fileCfg.Board.Pairs)
	applyIntConfig(cmd, "min-pairs", &boardMinPairs, fileCfg.Board.MinPairs)
	applyIntConfig(cmd, "max-pairs", &boardMaxPairs, fileCfg.Board.MaxPairs)
	applyStringsConfig(cmd, "faces", &faceFiles, fileCfg.Faces.Files)

	cfgDelay, spin, err := fileCfg.Timing.Durations()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfgDelay > 0 && !cmd.Flags().Changed("delay") {
		revealDelay = cfgDelay
	}
	if revealDelay <= 0 {
		return fmt.Errorf("--delay must be greater than 0")
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("go-match needs an interactive terminal")
	}

	faces, err := loadCatalog(faceFiles)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(fileCfg.Log)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer func() {
		if cerr := closeLog(); cerr != nil {
			logErrf("failed to close log: %v\n", cerr)
		}
	}()

	queue := schedule.NewQueue()
	opts := game.Options{
		MinPairs: boardMinPairs,
		MaxPairs: boardMaxPairs,
		Faces:    faces,
		Seed:     seed,
		State: state.Options{
			RevealDelay:  revealDelay,
			SpinDuration: spin,
		},
	}
	tracker := scoring.NewTracker(scoring.NewMemoryStorage())
	sess, err := game.NewSession(opts, tracker, queue, logger)
	if err != nil {
		return err
	}
	if boardPairs != 0 {
		if err := sess.NewGame(boardPairs); err != nil {
			return err
		}
	}

	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if !noMouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}
	program := tea.NewProgram(newModel(sess, queue, !noMouse), programOpts...)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// loadCatalog returns the built-in faces unless catalog paths are given.
func loadCatalog(paths []string) ([]deck.Face, error) {
	if len(paths) == 0 {
		return deck.DefaultFaces(), nil
	}
	faces, err := deck.LoadFaces(paths)
	if err != nil {
		return nil, fmt.Errorf("failed to load faces: %w", err)
	}
	if len(faces) == 0 {
		return nil, fmt.Errorf("no faces found in %s", strings.Join(paths, ", "))
	}
	return faces, nil
}

func newFacesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "faces",
		Short: "List the card faces in the catalog",
		Args:  cobra.NoArgs,
		RunE:  runFacesCmd,
	}
}

func runFacesCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringsConfig(cmd, "faces", &faceFiles, fileCfg.Faces.Files)

	faces, err := loadCatalog(faceFiles)
	if err != nil {
		return err
	}
	for _, f := range faces {
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", f.Glyph, f.Name); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
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

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# go-match configuration. Command line flags win over these values.

[board]
# pairs = %d
# min-pairs = %d
# max-pairs = %d

[timing]
# reveal-delay = "%s"
# spin-duration = "%s"

[faces]
# One "name glyph" pair per line; directories are read file by file.
# files = ["~/faces.txt"]

[log]
# level = "info"   # disabled, debug, info, warn, error
# file = "%s"
`, defaultPairs, defaultMinPairs, defaultMaxPairs,
		state.DefaultRevealDelay, state.DefaultSpinDuration, config.DefaultLogPath())
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

func applyStringsConfig(cmd *cobra.Command, name string, target *[]string, value []string) {
	if len(value) == 0 {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = value
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		_ = err
	}
}
