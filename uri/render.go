package uri

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gouri/internal/util"
)

// RenderTo writes the canonical form of the URI to w.
//
// The canonical form is:
//
//	scheme://[username[:password]@]host[:port](path|/)[?query][#fragment]
//
// Components are written as is, nothing is escaped or normalized.
// It returns [ErrMissingScheme] or [ErrMissingHost] without writing anything
// if the URI has no scheme or no host.
func (u URI) RenderTo(w io.Writer) (int, error) {
	if err := u.renderable(); err != nil {
		return 0, errtrace.Wrap(err)
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	u.writeTo(sb)
	return errtrace.Wrap2(io.WriteString(w, sb.String()))
}

// Render returns the canonical form of the URI.
// See [URI.RenderTo].
func (u URI) Render() (string, error) {
	if err := u.renderable(); err != nil {
		return "", errtrace.Wrap(err)
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	u.writeTo(sb)
	return sb.String(), nil
}

func (u URI) renderable() error {
	if u.scheme == "" {
		return ErrMissingScheme //errtrace:skip
	}
	if u.host == "" {
		return ErrMissingHost //errtrace:skip
	}
	return nil
}

func (u URI) writeTo(sb *strings.Builder) {
	sb.WriteString(u.scheme)
	sb.WriteString("://")
	if u.username != "" {
		sb.WriteString(u.username)
		if u.password != "" {
			sb.WriteByte(':')
			sb.WriteString(u.password)
		}
		sb.WriteByte('@')
	}
	sb.WriteString(u.host)
	if u.hasPort {
		sb.WriteByte(':')
		sb.WriteString(strconv.FormatUint(uint64(u.port), 10))
	}
	if u.path != "" {
		sb.WriteString(u.path)
	} else {
		sb.WriteByte('/')
	}
	if u.query != "" {
		sb.WriteByte('?')
		sb.WriteString(u.query)
	}
	if u.fragment != "" {
		sb.WriteByte('#')
		sb.WriteString(u.fragment)
	}
}

// String returns the canonical form of the URI,
// or an empty string if the URI can not be rendered.
func (u URI) String() string {
	s, _ := u.Render()
	return s
}

// Format implements [fmt.Formatter] for custom formatting of the URI.
func (u URI) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, u.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(u.String()))
		return
	default:
		if !f.Flag('+') && !f.Flag('#') {
			fmt.Fprint(f, u.String())
			return
		}

		type hideMethods URI
		type URI hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), URI(u))
		return
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (u URI) MarshalText() ([]byte, error) {
	s, err := u.Render()
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return []byte(s), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (u *URI) UnmarshalText(text []byte) error {
	u1, err := Parse(text)
	if err != nil {
		*u = URI{}
		return errtrace.Wrap(err)
	}
	*u = u1
	return nil
}
