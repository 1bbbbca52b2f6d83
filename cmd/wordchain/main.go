// Command wordchain finds every shortest word chain between two words of a
// dictionary, from the command line, interactively, or over HTTP.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordchain"
	"github.com/katalvlaran/wordchain/core"
	"github.com/katalvlaran/wordchain/internal/config"
	"github.com/katalvlaran/wordchain/internal/dictionary"
	"github.com/katalvlaran/wordchain/internal/logging"
	"github.com/katalvlaran/wordchain/internal/render"
)

// app carries flag values and the state set up before every command.
type app struct {
	configPath string
	dicts      []string
	format     string
	color      string
	logLevel   string
	logFormat  string
	maxChains  int

	cfg    *config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "wordchain",
		Short:         "Find every shortest chain of single-letter edits between two words",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", os.Getenv("WORDCHAIN_CONFIG"), "TOML configuration file")
	pf.StringArrayVar(&a.dicts, "dict", nil, "word list file (repeatable)")
	pf.StringVar(&a.format, "format", "", "output format: text, json or yaml")
	pf.StringVar(&a.color, "color", "", "color mode: auto, always or never")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")
	pf.StringVar(&a.logFormat, "log-format", "", "log format: text or json")
	pf.IntVar(&a.maxChains, "max-chains", 0, "return at most this many chains (0 = all)")

	root.AddCommand(a.newResolveCmd())
	root.AddCommand(a.newPromptCmd())
	root.AddCommand(a.newServeCmd())

	return root
}

// setup loads the configuration, applies explicitly set flags over it and
// builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("dict") {
		cfg.Dictionaries = a.dicts
	}
	if flags.Changed("format") {
		cfg.Format = a.format
	}
	if flags.Changed("color") {
		cfg.Color = a.color
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = a.logFormat
	}
	if flags.Changed("max-chains") {
		cfg.MaxChains = a.maxChains
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger, err := logging.New(logging.Config{Level: level, Format: cfg.LogFormat, Writer: cmd.ErrOrStderr()})
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger

	return nil
}

// loadDictionary reads every configured word list.
func (a *app) loadDictionary(ctx context.Context) *core.Dictionary {
	return dictionary.Load(ctx, a.logger, a.cfg.Dictionaries...)
}

// resolveAndRender resolves begin → end and writes the result to w.
func (a *app) resolveAndRender(ctx context.Context, w io.Writer, dict *core.Dictionary, begin, end string) error {
	begin = strings.ToLower(begin)
	end = strings.ToLower(end)

	chains, err := wordchain.Resolve(begin, end, dict,
		wordchain.WithContext(ctx),
		wordchain.WithMaxChains(a.cfg.MaxChains),
	)
	if err != nil {
		return err
	}
	a.logger.Debug("resolved", "begin", begin, "end", end, "chains", len(chains))

	return render.Write(w, render.NewDocument(begin, end, chains), render.Options{
		Format: render.Format(a.cfg.Format),
		Color:  a.useColor(w),
	})
}

// useColor applies the color mode to w; only files can be terminals.
func (a *app) useColor(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return render.ShouldUseColor(a.cfg.Color, f.Fd())
	}
	return a.cfg.Color == render.ColorAlways
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
