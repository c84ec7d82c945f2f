// Package grammar implements the permissive URI grammar.
//
// The grammar is a single anchored regular expression with one named group per URI component.
// It is compiled once per process and shared by every caller.
package grammar

//go:generate go tool errtrace -w .
//go:generate go tool mockgen -typed -destination=../testutil/grammarmock/matcher.go -package=grammarmock . Matcher

import (
	"regexp"
	"sync"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gouri/internal/errorutil"
	"github.com/ghettovoice/gouri/internal/util"
)

type Error string

func (e Error) Error() string { return string(e) }

func (Error) Grammar() bool { return true }

const (
	ErrEmptyInput     Error = "empty input"
	ErrMalformedInput Error = "malformed input"
	ErrInvalidPattern Error = "invalid pattern"
)

// Capture group names.
const (
	GroupScheme   = "scheme"
	GroupUsername = "username"
	GroupPassword = "password"
	GroupHost     = "host"
	GroupPort     = "port"
	GroupPath     = "path"
	GroupQuery    = "query"
	GroupFragment = "fragment"
)

// Pattern is the URI grammar.
//
// The host class admits '?', so in "http://host?x" the query is consumed by the host.
// Path may be preceded by a single stray ':'.
const Pattern = `^(?P<scheme>[a-zA-Z][a-zA-Z0-9+.-]*):` +
	`/{0,3}` +
	`(?P<username>.*?)?` +
	`(?::(?P<password>.*?))?@?` +
	`(?P<host>[0-9.A-Za-z?-]+)` +
	`(?::(?P<port>\d+))?` +
	`(?::?(?P<path>/[^?#]*))?` +
	`(?:\?(?P<query>[^#]*))?` +
	`(?:#(?P<fragment>.*))?$`

// Captures maps a group name to the matched substring.
// Groups that did not take part in the match are absent.
type Captures map[string]string

// Get returns the substring captured by the group name and whether the group matched.
func (c Captures) Get(name string) (string, bool) {
	v, ok := c[name]
	return v, ok
}

// Matcher matches input against a URI grammar.
type Matcher interface {
	// Match returns the named captures of s, or false if s does not match the grammar.
	Match(s string) (Captures, bool)
}

// RegexpMatcher is a [Matcher] backed by a compiled regular expression.
// It is immutable and safe for concurrent use.
type RegexpMatcher struct {
	re    *regexp.Regexp
	names []string
}

// Compile builds a [RegexpMatcher] from expr.
// Only named groups of expr produce captures.
func Compile(expr string) (*RegexpMatcher, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidPattern, err))
	}
	return &RegexpMatcher{re: re, names: re.SubexpNames()}, nil
}

// Match implements [Matcher].
func (m *RegexpMatcher) Match(s string) (Captures, bool) {
	idx := m.re.FindStringSubmatchIndex(s)
	if idx == nil {
		return nil, false
	}

	caps := make(Captures, len(m.names))
	for i, name := range m.names {
		if name == "" || idx[2*i] < 0 {
			continue
		}
		caps[name] = s[idx[2*i]:idx[2*i+1]]
	}
	return caps, true
}

// IsMatch reports whether s matches the grammar without extracting captures.
func (m *RegexpMatcher) IsMatch(s string) bool { return m.re.MatchString(s) }

// String returns the source expression.
func (m *RegexpMatcher) String() string { return m.re.String() }

var defMatcher = sync.OnceValue(func() *RegexpMatcher {
	return util.Must2(Compile(Pattern))
})

// Default returns the shared matcher compiled from [Pattern].
func Default() *RegexpMatcher { return defMatcher() }

// Match matches s against the default grammar.
func Match[T util.Byteseq](s T) (Captures, error) {
	if len(s) == 0 {
		return nil, errtrace.Wrap(ErrEmptyInput)
	}
	caps, ok := Default().Match(string(s))
	if !ok {
		return nil, errtrace.Wrap(ErrMalformedInput)
	}
	return caps, nil
}

// IsURI reports whether s matches the default grammar.
func IsURI[T util.Byteseq](s T) bool {
	return len(s) > 0 && Default().IsMatch(string(s))
}
