package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/licenses-generator/internal/config"
	"github.com/eugenenazirov/licenses-generator/internal/logging"
	"github.com/eugenenazirov/licenses-generator/internal/repository"
)

const (
	exitOK          = 0
	exitFailure     = 1
	exitUnreachable = 2
)

var newLogger = logging.New

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

type checkOptions struct {
	timeout     time.Duration
	rate        float64
	burst       int
	concurrency int
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	app := kingpin.New("generator-config", "Inspect license generator properties")
	app.UsageWriter(stderr)
	app.ErrorWriter(stderr)

	// --help and --version report through terminate; keep the exit in main.
	terminated, terminateCode := false, exitOK
	app.Terminate(func(code int) {
		terminated, terminateCode = true, code
	})

	propertiesPath := app.Flag("properties", "Path to the generator properties file").
		Envar("GENERATOR_PROPERTIES").Default(config.DefaultDefaults().FilePath).String()
	logLevel := app.Flag("log-level", "Log level (debug, info, warn, error)").Default("info").String()

	showCmd := app.Command("show", "Print the resolved settings as YAML").Default()

	checkCmd := app.Command("check-repositories", "Probe every configured repository over HTTP")
	var opts checkOptions
	checkCmd.Flag("timeout", "Timeout for a single probe").Default("10s").DurationVar(&opts.timeout)
	checkCmd.Flag("rate", "Probes per second (0 disables throttling)").Default("5").Float64Var(&opts.rate)
	checkCmd.Flag("burst", "Probe burst capacity").Default("5").IntVar(&opts.burst)
	checkCmd.Flag("concurrency", "Maximum probes in flight").Default("4").IntVar(&opts.concurrency)

	command, err := app.Parse(args)
	if terminated {
		return terminateCode
	}
	if err != nil {
		fmt.Fprintf(stderr, "generator-config: %v\n", err)
		return exitFailure
	}

	logger, err := newLogger(*logLevel)
	if err != nil {
		fmt.Fprintf(stderr, "generator-config: failed to initialize logger: %v\n", err)
		return exitFailure
	}
	defer func() {
		_ = logger.Sync()
	}()

	props, err := config.New(*propertiesPath, config.WithLogger(logger))
	if err != nil {
		logger.Error("failed to load properties", zap.String("path", *propertiesPath), zap.Error(err))
		return exitFailure
	}

	switch command {
	case showCmd.FullCommand():
		err = show(props, stdout)
	case checkCmd.FullCommand():
		err = checkRepositories(ctx, props, opts, logger, stdout)
	}

	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errUnreachable):
		logger.Warn("some repositories are unreachable")
		return exitUnreachable
	default:
		logger.Error("command failed", zap.String("command", command), zap.Error(err))
		return exitFailure
	}
}

func show(props *config.Properties, stdout io.Writer) error {
	settings, err := props.Settings()
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(stdout)
	enc.SetIndent(2)
	if err := enc.Encode(settings); err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	return enc.Close()
}

var errUnreachable = errors.New("unreachable repositories")

func checkRepositories(ctx context.Context, props *config.Properties, opts checkOptions, logger *zap.Logger, stdout io.Writer) error {
	entries, err := props.RepositoryEntries()
	if err != nil {
		return err
	}

	checker := repository.NewChecker(logger,
		repository.WithTimeout(opts.timeout),
		repository.WithRateLimit(opts.rate, opts.burst),
		repository.WithConcurrency(opts.concurrency),
	)

	unreachable := 0
	for _, result := range checker.Check(ctx, entries) {
		switch {
		case result.Err != nil:
			unreachable++
			fmt.Fprintf(stdout, "FAIL %s %s: %v\n", result.Name, result.URL, result.Err)
		case !result.Reachable:
			unreachable++
			fmt.Fprintf(stdout, "FAIL %s %s: HTTP %d\n", result.Name, result.URL, result.StatusCode)
		default:
			fmt.Fprintf(stdout, "OK   %s %s: HTTP %d (%s)\n", result.Name, result.URL, result.StatusCode, result.Latency.Round(time.Millisecond))
		}
	}

	if unreachable > 0 {
		return fmt.Errorf("%w: %d of %d", errUnreachable, unreachable, len(entries))
	}
	return nil
}
