package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/cryptowords/internal/config"
	"github.com/zjrosen/cryptowords/internal/infrastructure/sqlite"
	"github.com/zjrosen/cryptowords/internal/log"
	"github.com/zjrosen/cryptowords/internal/paths"
	"github.com/zjrosen/cryptowords/internal/pubsub"
	"github.com/zjrosen/cryptowords/internal/registry"
	"github.com/zjrosen/cryptowords/internal/runs/domain"
	"github.com/zjrosen/cryptowords/internal/tracing"
)

// skipConfigAnnotation marks commands that must run before any config exists.
const skipConfigAnnotation = "cryptowords/skip-config"

var (
	version  = "dev"
	cfgFile  string
	debug    bool
	logFile  string
	dbPath   string
	cfg      config.Config
	cfgUsed  string
	provider *tracing.Provider
	cleanups []func()
)

var rootCmd = &cobra.Command{
	Use:   "cryptowords",
	Short: "Extract candidate words from an encrypted message",
	Long: `Read a cipher text line by line, keep the original message, and list the
distinct punctuation-free words longest first. Those words are the
candidates a dictionary attack tries to decrypt first.`,
	Version:           version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: .cryptowords/config.yaml, then ~/.config/cryptowords/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false,
		"enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write debug log to this file instead of stderr")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "",
		"runs database path (default: ~/.config/cryptowords/runs.db)")
}

// setup loads config, then starts logging and tracing for the command.
func setup(cmd *cobra.Command, _ []string) error {
	if cmd.Annotations[skipConfigAnnotation] == "true" {
		cfg, cfgUsed = config.Defaults(), ""
		return nil
	}

	loaded, used, err := config.Load(viper.New(), cfgFile)
	if err != nil {
		return err
	}
	cfg, cfgUsed = loaded, used

	// Flags win over file and environment.
	flags := cmd.Flags()
	if flags.Changed("debug") {
		cfg.Debug = debug
	}
	if flags.Changed("log-file") {
		cfg.LogFile = paths.Expand(logFile)
		cfg.Debug = true
	}
	if flags.Changed("db") {
		cfg.Storage.Path = paths.Expand(dbPath)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if cfg.Debug {
		if cfg.LogFile != "" {
			closeLog, err := log.Init(cfg.LogFile)
			if err != nil {
				return err
			}
			cleanups = append(cleanups, closeLog)
		} else {
			cleanups = append(cleanups, log.InitWriter(cmd.ErrOrStderr()))
		}
	}
	log.Debug(log.CatCLI, "Running command", "command", cmd.CommandPath(), "config", cfgUsed)

	p, err := tracing.NewProvider(cfg.Tracing)
	if err != nil {
		return fmt.Errorf("initializing tracing: %w", err)
	}
	provider = p
	cleanups = append(cleanups, func() {
		if err := p.Shutdown(context.Background()); err != nil {
			log.ErrorErr(log.CatTrace, "Tracing shutdown failed", err)
		}
	})

	return nil
}

// newRegistry builds a registry from the loaded punctuation settings.
func newRegistry(unit domain.LengthUnit, publisher pubsub.Publisher[registry.Change]) (*registry.Registry, error) {
	classifier, err := cfg.Punctuation.Classifier()
	if err != nil {
		return nil, err
	}

	opts := []registry.Option{registry.WithLengthFunc(lengthFunc(unit))}
	if publisher != nil {
		opts = append(opts, registry.WithPublisher(publisher))
	}
	return registry.New(classifier, opts...), nil
}

func lengthFunc(unit domain.LengthUnit) registry.LengthFunc {
	if unit == domain.LengthUnitGraphemes {
		return registry.LengthGraphemes
	}
	return registry.LengthRunes
}

// resolveLengthUnit prefers an explicit flag value over config.
func resolveLengthUnit(flag string) (domain.LengthUnit, error) {
	unit := cfg.Registry.LengthUnit
	if flag != "" {
		unit = domain.LengthUnit(flag)
	}
	if unit == "" {
		return domain.LengthUnitRunes, nil
	}
	if !unit.IsValid() {
		return "", fmt.Errorf("length unit must be \"runes\" or \"graphemes\", got %q", unit)
	}
	return unit, nil
}

// resolveFormat prefers an explicit flag value over config.
func resolveFormat(flag string) (string, error) {
	format := cfg.Output.Format
	if flag != "" {
		format = flag
	}
	if err := config.ValidateFormat(format); err != nil {
		return "", err
	}
	return format, nil
}

func openDB() (*sqlite.DB, error) {
	db, err := sqlite.NewDB(cfg.Storage.DBPath())
	if err != nil {
		return nil, fmt.Errorf("opening runs database: %w", err)
	}
	return db, nil
}

// run executes the command tree with the given arguments and streams.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	defer func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
		cleanups = nil
	}()

	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	return rootCmd.ExecuteContext(ctx)
}

// Execute runs the root command
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	if err != nil && !errors.Is(err, context.Canceled) {
		_, _ = fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
