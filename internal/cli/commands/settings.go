package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ccollicutt/topup/internal/logger"
	"github.com/ccollicutt/topup/pkg/config"
	"github.com/ccollicutt/topup/pkg/extractor"
	"github.com/ccollicutt/topup/pkg/output"
	"github.com/ccollicutt/topup/pkg/source"
)

// ExitCode is set by commands to indicate the result
var ExitCode = 0

// EnvPrefix prefixes environment variables that mirror the global flags,
// e.g. TOPUP_CONFIG or TOPUP_VERBOSE.
const EnvPrefix = "TOPUP"

// Settings holds the global flags shared by every command. Values are layered
// by viper: command-line flag, then TOPUP_* environment variable, then default.
type Settings struct {
	v *viper.Viper
}

// NewSettings creates empty settings.
func NewSettings() *Settings {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return &Settings{v: v}
}

// Register adds the global flags to cmd as persistent flags and binds them.
func (s *Settings) Register(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringP("config", "c", "", "Config file (YAML)")
	flags.StringP("output", "o", "", "Output format (text|json|csv), overrides the config file")
	flags.BoolP("verbose", "v", false, "Log skipped lines and show line statistics")
	flags.BoolP("quiet", "q", false, "Summary only, no details")

	for _, name := range []string{"config", "output", "verbose", "quiet"} {
		_ = s.v.BindPFlag(name, flags.Lookup(name))
	}
}

// ConfigFile returns the config file path, or "" for built-in defaults.
func (s *Settings) ConfigFile() string { return s.v.GetString("config") }

// Output returns the requested output format, or "" to use the config file's.
func (s *Settings) Output() string { return s.v.GetString("output") }

// Verbose reports whether verbose output was requested.
func (s *Settings) Verbose() bool { return s.v.GetBool("verbose") }

// Quiet reports whether summary-only output was requested.
func (s *Settings) Quiet() bool { return s.v.GetBool("quiet") }

// app is everything a command needs after the settings are resolved.
type app struct {
	cfg       *config.Config
	logger    *zap.Logger
	extractor *extractor.Extractor
}

func (s *Settings) setup(ctx context.Context) (*app, error) {
	log, err := logger.New(s.Verbose())
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}

	cfg, err := config.Load(ctx, s.ConfigFile())
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if out := s.Output(); out != "" {
		cfg.Output = config.OutputFormat(out)
		if err := config.Validate(cfg); err != nil {
			return nil, err
		}
	}

	ext, err := cfg.Extractor(log)
	if err != nil {
		return nil, fmt.Errorf("creating extractor: %w", err)
	}

	if path := s.ConfigFile(); path != "" {
		log.Debug("loaded config", zap.String("path", path), zap.String("pattern", cfg.Pattern))
	}

	return &app{cfg: cfg, logger: log, extractor: ext}, nil
}

func (a *app) close() {
	logger.Sync(a.logger)
}

func (a *app) formatter(s *Settings) (output.Formatter, error) {
	return output.NewFormatter(string(a.cfg.Output), output.FormatOptions{
		Verbose: s.Verbose(),
		Quiet:   s.Quiet(),
	})
}

// openSource reads the named files (globs allowed) or, with no arguments
// or a single "-", standard input.
func openSource(args []string, stdin io.Reader) (source.LineSource, error) {
	if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
		return source.NewReaderSource("stdin", io.NopCloser(stdin)), nil
	}

	files, err := source.ExpandInputs(args)
	if err != nil {
		return nil, fmt.Errorf("expanding inputs: %w", err)
	}
	return source.NewFileSource(files), nil
}

// readText joins every line of src back into one text blob.
func readText(ctx context.Context, src source.LineSource) (string, error) {
	var lines []string
	for {
		line, err := src.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", err
		}
		lines = append(lines, line.Content)
	}
	return strings.Join(lines, "\n"), nil
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
