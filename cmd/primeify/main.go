package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/primeify/internal/cliconfig"
	"github.com/bft-labs/primeify/internal/domain"
	"github.com/bft-labs/primeify/pkg/log"
	"github.com/bft-labs/primeify/pkg/primeify"
	"github.com/bft-labs/primeify/plugins/sourcewatcher"
)

var longHelp = strings.TrimSpace(`
Rewrite every pixel of an image according to whether its 24-bit color value
is prime, spreading the work over a fixed number of workers.

Actions:
  blackout     non-prime pixels become opaque black (default)
  next-prime   non-prime pixels take the next prime color and become opaque

Supported formats: .png, .rgbz (zstd-compressed raw RGBA).
`)

var exampleUsage = strings.TrimSpace(`
  primeify -p 8 -b photo.png out.png
  primeify -p 4 -n photo.png out.rgbz
  primeify --watch --debounce 500ms photo.png out.png
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the command line and returns the process exit status.
func run(ctx context.Context, args []string, stderr io.Writer) int {
	cfg := cliconfig.DefaultConfig()
	var (
		cfgPath string
		help    bool
	)

	logger := cliconfig.NewLogger(stderr)

	root := &cobra.Command{
		Use:           "primeify [flags] <source> <output>",
		Short:         "Transform image pixels by primality of their color value",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return fmt.Errorf("%w: expected <source> <output>, got %d argument(s)", domain.ErrUsage, len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })
			// -b and -n are spellings of --action.
			if changed["blackout"] || changed["next-prime"] {
				changed["action"] = true
			}

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("%w: load config: %v", domain.ErrInvalidConfig, err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
				}
			}

			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
			}

			if err := cfg.Validate(); err != nil {
				return err
			}
			lvl, _ := cfg.Level()
			logger = logger.Level(lvl)

			src, out := args[0], args[1]
			if cfg.Watch && samePath(src, out) {
				return fmt.Errorf("%w: --watch needs distinct source and output", domain.ErrInvalidConfig)
			}

			logger.Debug().Interface("config", cfg).Msg("configuration")

			return transform(cmd.Context(), cfg, src, out, logger)
		},
	}

	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)
	root.SetOut(stderr)
	root.SetErr(stderr)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", domain.ErrUsage, err)
	})

	flags := root.Flags()
	flags.BoolVarP(&help, "help", "h", false, "show this help and exit")
	flags.StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.primeify/config.toml)")
	flags.IntVarP(&cfg.Workers, "workers", "p", cfg.Workers, "number of parallel workers")
	flags.Var(&actionValue{dst: &cfg.Action}, "action", "action for non-prime pixels: blackout or next-prime")
	flags.VarP(&actionValue{dst: &cfg.Action, fixed: primeify.ActionBlackout}, "blackout", "b", "black out non-prime pixels (same as --action blackout)")
	flags.VarP(&actionValue{dst: &cfg.Action, fixed: primeify.ActionNextPrime}, "next-prime", "n", "advance non-prime pixels to the next prime (same as --action next-prime)")
	flags.Lookup("blackout").NoOptDefVal = "true"
	flags.Lookup("next-prime").NoOptDefVal = "true"
	flags.StringVar(&cfg.Extraction, "extraction", cfg.Extraction, "how the tested value is derived from a pixel")
	flags.IntVar(&cfg.Rounds, "rounds", cfg.Rounds, "Miller-Rabin rounds per primality test")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	flags.BoolVar(&cfg.Watch, "watch", cfg.Watch, "re-run whenever the source file changes")
	flags.DurationVar(&cfg.Debounce, "debounce", cfg.Debounce, "quiet period before a watched change triggers a re-run")

	err := root.ExecuteContext(ctx)
	if help {
		return domain.ExitUsage
	}
	if err != nil {
		if isUsageError(err) {
			fmt.Fprintln(stderr, root.UsageString())
		}
		logger.Error().Err(err).Msg("primeify")
		return domain.ExitCode(err)
	}
	return domain.ExitOK
}

// transform performs one run and, with cfg.Watch, keeps re-running on
// source changes until ctx is canceled.
func transform(ctx context.Context, cfg cliconfig.Config, src, out string, zl zerolog.Logger) error {
	logger := log.NewZerologAdapterWithLogger(zl)

	p, err := primeify.New(primeify.Config{
		Workers:    cfg.Workers,
		Action:     cfg.Action,
		Extraction: cfg.Extraction,
		Rounds:     cfg.Rounds,
	}, primeify.WithLogger(logger))
	if err != nil {
		return err
	}

	once := func(ctx context.Context) error {
		_, err := p.Transform(ctx, src, out)
		return err
	}

	if err := once(ctx); err != nil {
		return err
	}
	if !cfg.Watch {
		return nil
	}

	w := sourcewatcher.New(sourcewatcher.Config{DebounceDelay: cfg.Debounce}, logger)
	if err := w.Watch(ctx, src, once); err != nil {
		return fmt.Errorf("watch source: %w", err)
	}
	logger.Info("stopped watching")
	return nil
}

func isUsageError(err error) bool {
	return errors.Is(err, domain.ErrUsage) ||
		errors.Is(err, domain.ErrInvalidWorkerCount) ||
		errors.Is(err, domain.ErrUnknownStrategy) ||
		errors.Is(err, domain.ErrInvalidConfig)
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}
