package util_test

import (
	"testing"

	"github.com/ghettovoice/gouri/internal/util"
)

func TestStringBuilderPool(t *testing.T) {
	t.Parallel()

	sb := util.GetStringBuilder()
	sb.WriteString("http://example.com/")
	if got, want := sb.String(), "http://example.com/"; got != want {
		t.Errorf("sb.String() = %q, want %q", got, want)
	}
	util.FreeStringBuilder(sb)

	sb = util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	if got := sb.Len(); got != 0 {
		t.Errorf("sb.Len() = %d, want 0", got)
	}
}

func TestLCase(t *testing.T) {
	t.Parallel()

	if got, want := util.LCase("HTTPS"), "https"; got != want {
		t.Errorf("util.LCase(%q) = %q, want %q", "HTTPS", got, want)
	}
	if got, want := util.TrimSP("  ftp://x  "), "ftp://x"; got != want {
		t.Errorf("util.TrimSP(...) = %q, want %q", got, want)
	}
}
