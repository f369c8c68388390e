package booklet

import (
	"strings"
	"testing"
	"time"
)

func TestNormalizePath_CleansAndNormalizes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"already clean", "/out", "/out"},
		{"trailing slash", "/out/", "/out"},
		{"doubled separator", "/out//sub", "/out/sub"},
		{"dot segments", "/out/./sub/../sub", "/out/sub"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizePath(tt.in); got != tt.want {
				t.Errorf("normalizePath(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizePath_UnicodeAliases(t *testing.T) {
	// "café" composed (U+00E9) vs decomposed (e + U+0301) must key
	// identically.
	composed := "/out/café"
	decomposed := "/out/café"

	if normalizePath(composed) != normalizePath(decomposed) {
		t.Errorf("NFC normalization: %q and %q should key identically", composed, decomposed)
	}
}

func TestResolvePath_Format(t *testing.T) {
	ts := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	got := resolvePath("/out", "b-1", ts)

	if !strings.HasPrefix(got, "/out/booklet_b-1_") {
		t.Errorf("resolvePath() = %q, want /out/booklet_b-1_<ts> prefix", got)
	}
	if !strings.HasSuffix(got, ".json") {
		t.Errorf("resolvePath() = %q, want .json suffix", got)
	}
}

func TestResolvePath_DistinctInstantsDistinctPaths(t *testing.T) {
	ts := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	p1 := resolvePath("/out", "b-1", ts)
	p2 := resolvePath("/out", "b-1", ts.Add(time.Nanosecond))
	if p1 == p2 {
		t.Errorf("same path %q for distinct save instants", p1)
	}
}

func TestClone_Independent(t *testing.T) {
	orig := &Booklet{ID: "b-1", Payload: []byte("payload")}
	copied := orig.clone()

	copied.Payload[0] = 'X'
	if orig.Payload[0] == 'X' {
		t.Error("clone aliases the original payload")
	}
}

func TestBlank(t *testing.T) {
	for _, s := range []string{"", " ", "\t", "  \n "} {
		if !blank(s) {
			t.Errorf("blank(%q) = false, want true", s)
		}
	}
	if blank("/out") {
		t.Error("blank(\"/out\") = true, want false")
	}
}
