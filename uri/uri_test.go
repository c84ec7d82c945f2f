package uri_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ghettovoice/gouri/uri"
)

func TestURI_With(t *testing.T) {
	t.Parallel()

	base := uri.New("http").WithHost("example.com")
	u := base.WithPort(8080).WithPath("/a")

	if _, ok := base.Port(); ok {
		t.Errorf("base.Port() ok = true, want false")
	}
	if _, ok := base.Path(); ok {
		t.Errorf("base.Path() ok = true, want false")
	}
	if got, ok := u.Port(); !ok || got != 8080 {
		t.Errorf("u.Port() = %d, %v, want 8080, true", got, ok)
	}
	if got, ok := u.WithoutPort().Port(); ok {
		t.Errorf("u.WithoutPort().Port() = %d, true, want absent", got)
	}
	if got, ok := u.WithHost("").Host(); ok {
		t.Errorf("u.WithHost(\"\").Host() = %q, true, want absent", got)
	}
	if got := u.WithScheme("https").Scheme(); got != "https" {
		t.Errorf("u.WithScheme(\"https\").Scheme() = %q, want %q", got, "https")
	}
}

func TestURI_Equal(t *testing.T) {
	t.Parallel()

	u := uri.New("http").WithHost("example.com").WithPath("/a")

	cases := []struct {
		name string
		uri  uri.URI
		val  any
		want bool
	}{
		{"zero to zero", uri.URI{}, uri.URI{}, true},
		{"zero to nil ptr", uri.URI{}, (*uri.URI)(nil), false},
		{"to nil", u, nil, false},
		{"type mismatch", u, "http://example.com/a", false},
		{"same", u, uri.New("http").WithHost("example.com").WithPath("/a"), true},
		{"ptr", u, &u, true},
		{"case sensitive", u, uri.New("HTTP").WithHost("example.com").WithPath("/a"), false},
		{"different path", u, u.WithPath("/b"), false},
		{"port zero vs absent", u, u.WithPort(0), false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.uri.Equal(c.val); got != c.want {
				t.Errorf("uri.Equal(val) = %v, want %v", got, c.want)
			}
		})
	}
}

func TestURI_IsValid(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		uri      uri.URI
		wantZero bool
		want     bool
	}{
		{"zero", uri.URI{}, true, false},
		{"scheme only", uri.New("http"), false, false},
		{"host only", uri.URI{}.WithHost("h"), false, false},
		{"scheme and host", uri.New("http").WithHost("h"), false, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.uri.IsZero(); got != c.wantZero {
				t.Errorf("uri.IsZero() = %v, want %v", got, c.wantZero)
			}
			if got := c.uri.IsValid(); got != c.want {
				t.Errorf("uri.IsValid() = %v, want %v", got, c.want)
			}
		})
	}
}

func TestURI_LogValue(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))

	u := uri.New("https").
		WithUsername("rust").
		WithPassword("1234567eight9").
		WithHost("www.unknown.host").
		WithPort(1345)
	logger.Info("parsed", slog.Any("uri", u))

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("json.Unmarshal(log) error = %v, want nil", err)
	}
	want := map[string]any{
		"level": "INFO",
		"msg":   "parsed",
		"uri": map[string]any{
			"scheme":   "https",
			"username": "rust",
			"password": "***",
			"host":     "www.unknown.host",
			"port":     float64(1345),
		},
	}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("log record = %v, want %v\ndiff (-got +want):\n%v", got, want, diff)
	}
}
