package main

import (
	"fmt"

	"braces.dev/errtrace"
	"github.com/spf13/cobra"

	"github.com/ghettovoice/gouri/uri"
)

type renderFlags struct {
	scheme   string
	username string
	password string
	host     string
	port     uint16
	path     string
	query    string
	fragment string
}

func newRenderCmd(a *app) *cobra.Command {
	var rf renderFlags
	cmd := &cobra.Command{
		Use:     "render",
		Short:   "render a URI from components",
		Example: "uriparse render --scheme gopher --host foo.bar --port 1234 --path /asdf",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return errtrace.Wrap(a.render(rf, cmd.Flags().Changed("port")))
		},
	}

	f := cmd.Flags()
	f.StringVar(&rf.scheme, "scheme", "", "URI scheme (required)")
	f.StringVar(&rf.username, "username", "", "user name")
	f.StringVar(&rf.password, "password", "", "password, ignored without user name")
	f.StringVar(&rf.host, "host", "", "host (required)")
	f.Uint16Var(&rf.port, "port", 0, "port")
	f.StringVar(&rf.path, "path", "", "path, written as is")
	f.StringVar(&rf.query, "query", "", "query without '?'")
	f.StringVar(&rf.fragment, "fragment", "", "fragment without '#'")
	return cmd
}

func (a *app) render(rf renderFlags, hasPort bool) error {
	u := uri.New(rf.scheme).
		WithUsername(rf.username).
		WithPassword(rf.password).
		WithHost(rf.host).
		WithPath(rf.path).
		WithQuery(rf.query).
		WithFragment(rf.fragment)
	if hasPort {
		u = u.WithPort(rf.port)
	}

	s, err := u.Render()
	if err != nil {
		return errtrace.Wrap(a.fail(err))
	}
	fmt.Fprintln(a.stdout, s)
	return nil
}
