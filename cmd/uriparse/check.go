package main

import (
	"fmt"
	"log/slog"

	"braces.dev/errtrace"
	"github.com/spf13/cobra"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "check [URI...]",
		Short:   "report whether inputs are URIs",
		Example: "uriparse check https://example.com/a 'lazy string'",
		RunE: func(_ *cobra.Command, args []string) error {
			return errtrace.Wrap(a.check(args))
		},
	}
}

func (a *app) check(args []string) error {
	inputs, err := a.inputs(args)
	if err != nil {
		return errtrace.Wrap(a.fail(err))
	}

	var invalid int
	for _, in := range inputs {
		ok := a.parser.IsURI(in)
		if !ok {
			invalid++
		}
		fmt.Fprintf(a.stdout, "%s\t%t\n", in, ok)
	}
	if invalid > 0 {
		a.log.Warn("inputs are not URIs", slog.Int("count", invalid), slog.Int("total", len(inputs)))
		return errtrace.Wrap(errInvalidInput)
	}
	return nil
}
