package uri

//go:generate go tool errtrace -w .

import (
	"log/slog"
	"strconv"
	"sync"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gouri/internal/errorutil"
	"github.com/ghettovoice/gouri/internal/grammar"
	"github.com/ghettovoice/gouri/internal/log"
	"github.com/ghettovoice/gouri/internal/util"
)

// Matcher matches an input against a URI grammar and returns named captures.
// See [grammar.Matcher].
type Matcher = grammar.Matcher

// Captures maps a component name to its captured substring.
// See [grammar.Captures].
type Captures = grammar.Captures

// ParserOptions are the options of [Parser].
type ParserOptions struct {
	// Matcher is the grammar matcher used to decompose inputs.
	// If nil, the shared matcher compiled from [grammar.Pattern] is used.
	Matcher Matcher
	// Log is a logger used to report rejected inputs.
	// If nil, [log.Noop] is used.
	Log *slog.Logger
}

func (o *ParserOptions) matcher() Matcher {
	if o == nil || o.Matcher == nil {
		return grammar.Default()
	}
	return o.Matcher
}

func (o *ParserOptions) log() *slog.Logger {
	if o == nil || o.Log == nil {
		return log.Noop
	}
	return o.Log
}

// Parser combines a grammar matcher with the component builder.
// Parser is safe for concurrent use.
type Parser struct {
	matcher Matcher
	log     *slog.Logger
}

// NewParser creates a new parser with the given options.
// Options are optional, pass nil to use defaults.
func NewParser(opts *ParserOptions) *Parser {
	return &Parser{
		matcher: opts.matcher(),
		log:     opts.log(),
	}
}

var defParser = sync.OnceValue(func() *Parser { return NewParser(nil) })

// DefaultParser returns the parser used by [Parse] and [IsURI].
func DefaultParser() *Parser { return defParser() }

// Parse parses s into a [URI].
//
// It returns [ErrNoMatch] if s does not match the grammar
// and [ErrMissingScheme] if the grammar matched without a scheme.
// A port that does not fit into uint16 is dropped silently.
func (p *Parser) Parse(s string) (URI, error) {
	if s == "" {
		return URI{}, errtrace.Wrap(errorutil.NewWrapperError(ErrNoMatch, grammar.ErrEmptyInput))
	}

	caps, ok := p.matcher.Match(s)
	if !ok {
		p.log.Debug("input rejected by the URI grammar", slog.String("input", s))
		return URI{}, errtrace.Wrap(errorutil.NewWrapperError(ErrNoMatch, grammar.ErrMalformedInput))
	}

	u, err := FromCaptures(caps)
	if err != nil {
		p.log.Debug("failed to build URI from captures", slog.String("input", s), slog.Any("error", err))
		return URI{}, errtrace.Wrap(err)
	}

	if port, ok := caps.Get(grammar.GroupPort); ok && !u.hasPort {
		p.log.Debug("dropped port out of range", slog.String("input", s), slog.String("port", port))
	}
	return u, nil
}

// IsURI reports whether s matches the parser grammar.
func (p *Parser) IsURI(s string) bool {
	if s == "" {
		return false
	}
	if m, ok := p.matcher.(interface{ IsMatch(s string) bool }); ok {
		return m.IsMatch(s)
	}
	_, ok := p.matcher.Match(s)
	return ok
}

// Parse parses s (string or []byte) into a [URI] using the [DefaultParser].
// See [Parser.Parse].
func Parse[T util.Byteseq](s T) (URI, error) {
	return errtrace.Wrap2(DefaultParser().Parse(string(s)))
}

// IsURI reports whether s (string or []byte) is a URI accepted by the [DefaultParser].
func IsURI[T util.Byteseq](s T) bool {
	return DefaultParser().IsURI(string(s))
}

// FromCaptures builds a [URI] from grammar captures.
//
// Missing or empty captures produce absent components.
// A port that is not a valid uint16 produces an absent port.
// It returns [ErrMissingScheme] if the scheme capture is missing or empty.
//
// End users usually don't need to use this function directly and should use [Parse] instead.
func FromCaptures(caps Captures) (URI, error) {
	scheme, _ := caps.Get(grammar.GroupScheme)
	if scheme == "" {
		return URI{}, errtrace.Wrap(ErrMissingScheme)
	}

	u := URI{
		scheme:   scheme,
		username: caps[grammar.GroupUsername],
		password: caps[grammar.GroupPassword],
		host:     caps[grammar.GroupHost],
		path:     caps[grammar.GroupPath],
		query:    caps[grammar.GroupQuery],
		fragment: caps[grammar.GroupFragment],
	}
	if v, ok := caps.Get(grammar.GroupPort); ok {
		if port, err := strconv.ParseUint(v, 10, 16); err == nil {
			u.port, u.hasPort = uint16(port), true
		}
	}
	return u, nil
}
