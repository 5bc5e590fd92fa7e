// README: Storage key derivation tests.
package history

import (
	"errors"
	"strings"
	"testing"
)

func TestKeyDeterministicAndDistinct(t *testing.T) {
	a1, err := Key("Asha")
	if err != nil {
		t.Fatalf("key: %v", err)
	}
	a2, _ := Key("Asha")
	if a1 != a2 {
		t.Fatalf("key not deterministic: %q vs %q", a1, a2)
	}
	if !strings.HasPrefix(a1, "asha-") {
		t.Errorf("expected readable slug prefix, got %q", a1)
	}

	// Names that collapse to the same slug must still get different keys.
	pairs := [][2]string{
		{"Asha", "asha"},
		{"Ravi K", "Ravi_K"},
		{"a/b", "a_b"},
		{"José", "Jos_"},
	}
	for _, p := range pairs {
		k1, _ := Key(p[0])
		k2, _ := Key(p[1])
		if k1 == k2 {
			t.Errorf("Key(%q) == Key(%q) == %q", p[0], p[1], k1)
		}
	}
}

func TestKeyIsPathSafe(t *testing.T) {
	names := []string{"../../etc/passwd", `C:\Windows`, "a\x00b", "名前", "  spaced  out  ", strings.Repeat("x", 200)}
	for _, n := range names {
		k, err := Key(n)
		if err != nil {
			t.Fatalf("Key(%q): %v", n, err)
		}
		if strings.ContainsAny(k, `/\.`) || strings.ContainsRune(k, 0) {
			t.Errorf("Key(%q) = %q contains unsafe characters", n, k)
		}
		if len(k) > maxSlugRunes+13 {
			t.Errorf("Key(%q) too long: %d", n, len(k))
		}
	}
}

func TestKeyRejectsBlank(t *testing.T) {
	for _, n := range []string{"", "   ", "\t"} {
		if _, err := Key(n); !errors.Is(err, ErrInvalidUser) {
			t.Errorf("Key(%q): expected ErrInvalidUser, got %v", n, err)
		}
	}
}

func TestLegacyKey(t *testing.T) {
	k, err := LegacyKey("Asha")
	if err != nil || k != "Asha" {
		t.Fatalf("LegacyKey(Asha) = %q, %v", k, err)
	}
	for _, n := range []string{"../x", "a/b", `a\b`, "", ".."} {
		if _, err := LegacyKey(n); !errors.Is(err, ErrInvalidUser) {
			t.Errorf("LegacyKey(%q): expected ErrInvalidUser, got %v", n, err)
		}
	}
}
