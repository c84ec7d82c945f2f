package uri

import "log/slog"

// URI is a parsed URI.
//
// URI is an immutable value. Every optional component is either absent or non-empty,
// setters normalize an empty value to absence.
// The zero value has no scheme and is not renderable.
type URI struct {
	scheme   string
	username string
	password string
	host     string
	path     string
	query    string
	fragment string
	port     uint16
	hasPort  bool
}

// New returns a URI with the scheme and no other components.
func New(scheme string) URI { return URI{scheme: scheme} }

// Scheme returns the URI scheme.
func (u URI) Scheme() string { return u.scheme }

// Username returns the user name and whether it is set.
func (u URI) Username() (string, bool) { return u.username, u.username != "" }

// Password returns the password and whether it is set.
func (u URI) Password() (string, bool) { return u.password, u.password != "" }

// Host returns the host and whether it is set.
func (u URI) Host() (string, bool) { return u.host, u.host != "" }

// Port returns the port and whether it is set.
func (u URI) Port() (uint16, bool) { return u.port, u.hasPort }

// Path returns the path and whether it is set.
// A set path is returned as it was parsed, usually with the leading slash.
func (u URI) Path() (string, bool) { return u.path, u.path != "" }

// Query returns the raw query without the leading '?' and whether it is set.
func (u URI) Query() (string, bool) { return u.query, u.query != "" }

// Fragment returns the fragment without the leading '#' and whether it is set.
func (u URI) Fragment() (string, bool) { return u.fragment, u.fragment != "" }

func (u URI) WithScheme(scheme string) URI {
	u.scheme = scheme
	return u
}

func (u URI) WithUsername(username string) URI {
	u.username = username
	return u
}

func (u URI) WithPassword(password string) URI {
	u.password = password
	return u
}

func (u URI) WithHost(host string) URI {
	u.host = host
	return u
}

func (u URI) WithPort(port uint16) URI {
	u.port, u.hasPort = port, true
	return u
}

func (u URI) WithoutPort() URI {
	u.port, u.hasPort = 0, false
	return u
}

func (u URI) WithPath(path string) URI {
	u.path = path
	return u
}

func (u URI) WithQuery(query string) URI {
	u.query = query
	return u
}

func (u URI) WithFragment(fragment string) URI {
	u.fragment = fragment
	return u
}

// Equal reports whether all components of the URI are equal to the components of val.
// val can be URI or *URI. Components are compared as is, without case folding.
func (u URI) Equal(val any) bool {
	var other URI
	switch v := val.(type) {
	case URI:
		other = v
	case *URI:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return u == other
}

// IsZero reports whether the URI has no components.
func (u URI) IsZero() bool { return u == URI{} }

// IsValid reports whether the URI has a scheme and a host, i.e. it can be rendered.
func (u URI) IsValid() bool { return u.scheme != "" && u.host != "" }

// LogValue implements [slog.LogValuer].
// The password is masked.
func (u URI) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, 8)
	attrs = append(attrs, slog.String("scheme", u.scheme))
	if u.username != "" {
		attrs = append(attrs, slog.String("username", u.username))
	}
	if u.password != "" {
		attrs = append(attrs, slog.String("password", "***"))
	}
	if u.host != "" {
		attrs = append(attrs, slog.String("host", u.host))
	}
	if u.hasPort {
		attrs = append(attrs, slog.Uint64("port", uint64(u.port)))
	}
	if u.path != "" {
		attrs = append(attrs, slog.String("path", u.path))
	}
	if u.query != "" {
		attrs = append(attrs, slog.String("query", u.query))
	}
	if u.fragment != "" {
		attrs = append(attrs, slog.String("fragment", u.fragment))
	}
	return slog.GroupValue(attrs...)
}
