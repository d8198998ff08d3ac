package sitemap

import (
	"errors"
	"testing"

	"github.com/jsamuelsen11/cratedocs-web/internal/domain"
)

func TestParseShardKey_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
	}{
		{name: "digit", raw: "1"},
		{name: "two letters", raw: "aa"},
		{name: "uppercase", raw: "A"},
		{name: "empty", raw: ""},
		{name: "punctuation", raw: "-"},
		{name: "byte after z", raw: "{"},
		{name: "byte before a", raw: "`"},
		{name: "multibyte letter", raw: "é"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseShardKey(tt.raw)
			if !errors.Is(err, domain.ErrNotFound) {
				t.Errorf("ParseShardKey(%q) error = %v, want ErrNotFound", tt.raw, err)
			}
		})
	}
}

func TestParseShardKey_EveryLetter(t *testing.T) {
	t.Parallel()

	for c := 'a'; c <= 'z'; c++ {
		raw := string(c)
		k, err := ParseShardKey(raw)
		if err != nil {
			t.Fatalf("ParseShardKey(%q) error = %v, want nil", raw, err)
		}
		if k.String() != raw {
			t.Errorf("ParseShardKey(%q).String() = %q, want %q", raw, k.String(), raw)
		}
	}
}

func TestBuildIndex(t *testing.T) {
	t.Parallel()

	idx := BuildIndex()
	if len(idx.Shards) != 26 {
		t.Fatalf("len(Shards) = %d, want 26", len(idx.Shards))
	}
	for i, k := range idx.Shards {
		want := string(rune('a' + i))
		if k.String() != want {
			t.Errorf("Shards[%d] = %q, want %q", i, k.String(), want)
		}
	}
}

func TestBuildIndex_FreshSlice(t *testing.T) {
	t.Parallel()

	first := BuildIndex()
	first.Shards[0] = 'q'

	second := BuildIndex()
	if second.Shards[0] != 'a' {
		t.Errorf("Shards[0] = %q after mutating an earlier index, want %q", second.Shards[0].String(), "a")
	}
}
