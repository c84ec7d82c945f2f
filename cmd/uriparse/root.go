package main

import (
	"bufio"
	"io"
	"log/slog"

	"braces.dev/errtrace"
	"github.com/spf13/cobra"

	"github.com/ghettovoice/gouri/internal/errorutil"
	"github.com/ghettovoice/gouri/internal/log"
	"github.com/ghettovoice/gouri/internal/util"
	"github.com/ghettovoice/gouri/uri"
)

// errInvalidInput is returned when at least one input is not a URI.
const errInvalidInput errorutil.Error = "invalid input"

// app holds the state shared by the subcommands of one invocation.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	configFile string
	cfg        config
	log        *slog.Logger
	parser     *uri.Parser
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		cfg:    defaultConfig(),
		log:    log.Noop,
	}

	root := &cobra.Command{
		Use:           "uriparse",
		Short:         "uriparse checks, decomposes and renders URIs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return errtrace.Wrap(a.setup(cmd))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return errtrace.Wrap(cmd.Help())
		},
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "TOML config file")
	pf.String("log-format", a.cfg.LogFormat, "log format [console, dev, none]")
	pf.String("log-level", a.cfg.LogLevel, "log level [debug, info, warn, error]")

	root.AddCommand(
		newCheckCmd(a),
		newParseCmd(a),
		newRenderCmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := loadConfig(a.configFile)
	if err != nil {
		return errtrace.Wrap(a.fail(err))
	}
	cfg.override(cmd.Flags())
	if err := cfg.validate(); err != nil {
		return errtrace.Wrap(a.fail(err))
	}
	a.cfg = cfg

	lvl, _ := cfg.level()
	switch util.LCase(cfg.LogFormat) {
	case logFormatDev:
		a.log = log.NewDev(a.stderr, lvl)
	case logFormatNone:
		a.log = log.Noop
	default:
		a.log = log.NewConsole(a.stderr, lvl)
	}
	a.parser = uri.NewParser(&uri.ParserOptions{Log: a.log})
	return nil
}

// fail reports err to stderr and returns it.
func (a *app) fail(err error) error {
	_, _ = io.WriteString(a.stderr, "uriparse: "+err.Error()+"\n")
	return err //errtrace:skip
}

// inputs returns args, or the non-empty lines of stdin if args are empty.
func (a *app) inputs(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	var lines []string
	sc := bufio.NewScanner(a.stdin)
	for sc.Scan() {
		if line := util.TrimSP(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return lines, nil
}
