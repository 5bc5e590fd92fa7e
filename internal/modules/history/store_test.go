// README: File store tests (missing file, round trip, on-disk format, corruption).
package history

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestFileStore(t *testing.T, legacy bool) (*FileStore, string) {
	t.Helper()
	dir := t.TempDir()
	s, err := NewFileStore(dir, legacy)
	if err != nil {
		t.Fatalf("new file store: %v", err)
	}
	return s, dir
}

func TestFileStoreLoadMissingIsEmpty(t *testing.T) {
	s, _ := newTestFileStore(t, false)

	records, err := s.Load(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if records == nil || len(records) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", records)
	}
}

func TestFileStoreAppendRoundTrip(t *testing.T) {
	s, _ := newTestFileStore(t, false)
	ctx := context.Background()

	r := Record{City: "Goa", Days: 3, Budget: 6000, Preferences: "food", Itinerary: "Day 1: Baga"}
	for i := 0; i < 3; i++ {
		h, err := s.Load(ctx, "Asha")
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		r.Days = i + 1
		if err := s.Save(ctx, "Asha", append(h, r)); err != nil {
			t.Fatalf("save: %v", err)
		}
		got, err := s.Load(ctx, "Asha")
		if err != nil {
			t.Fatalf("reload: %v", err)
		}
		if len(got) != i+1 || got[len(got)-1] != r {
			t.Fatalf("round %d: last element = %+v, want %+v", i, got[len(got)-1], r)
		}
	}
}

func TestFileStoreFormat(t *testing.T) {
	s, dir := newTestFileStore(t, false)
	ctx := context.Background()

	r := Record{City: "Goa", Days: 3, Budget: 6000, Preferences: "food", Itinerary: "Day 1"}
	if err := s.Save(ctx, "Asha", []Record{r}); err != nil {
		t.Fatalf("save: %v", err)
	}
	path, _ := s.Path("Asha")
	if filepath.Dir(path) != dir || !strings.HasSuffix(path, "_history.json") {
		t.Fatalf("unexpected path %q", path)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	want := "[\n  {\n    \"city\": \"Goa\",\n    \"days\": 3,\n    \"budget\": 6000,\n    \"preferences\": \"food\",\n    \"itinerary\": \"Day 1\"\n  }\n]"
	if string(raw) != want {
		t.Fatalf("unexpected file contents:\n%s", raw)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Fatalf("expected only the history file, found %d entries", len(entries))
	}
}

func TestFileStoreUsersIsolated(t *testing.T) {
	s, _ := newTestFileStore(t, false)
	ctx := context.Background()

	if err := s.Save(ctx, "Asha", []Record{{City: "Goa", Days: 3, Budget: 6000, Itinerary: "a"}}); err != nil {
		t.Fatalf("save asha: %v", err)
	}
	if err := s.Save(ctx, "asha", []Record{{City: "Pune", Days: 2, Budget: 3000, Itinerary: "b"}}); err != nil {
		t.Fatalf("save asha lower: %v", err)
	}
	a, _ := s.Load(ctx, "Asha")
	b, _ := s.Load(ctx, "asha")
	if len(a) != 1 || a[0].City != "Goa" {
		t.Errorf("Asha sees %+v", a)
	}
	if len(b) != 1 || b[0].City != "Pune" {
		t.Errorf("asha sees %+v", b)
	}
	ravi, _ := s.Load(ctx, "Ravi")
	if len(ravi) != 0 {
		t.Errorf("Ravi should have no history, got %+v", ravi)
	}
}

func TestFileStoreCorruptFileFailsLoudly(t *testing.T) {
	s, _ := newTestFileStore(t, false)
	path, _ := s.Path("Asha")
	if err := os.WriteFile(path, []byte(`[{"city": "Goa", "days": 3`), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	_, err := s.Load(context.Background(), "Asha")
	if !errors.Is(err, ErrStorage) {
		t.Fatalf("expected ErrStorage, got %v", err)
	}
}

func TestFileStoreNullFileIsEmpty(t *testing.T) {
	s, _ := newTestFileStore(t, false)
	path, _ := s.Path("Asha")
	if err := os.WriteFile(path, []byte("null"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	got, err := s.Load(context.Background(), "Asha")
	if err != nil || got == nil || len(got) != 0 {
		t.Fatalf("expected empty history, got %#v, %v", got, err)
	}
}

func TestFileStoreLegacyNaming(t *testing.T) {
	s, dir := newTestFileStore(t, true)
	ctx := context.Background()

	// A file written by the original application layout.
	legacy := `[
  {
    "city": "Jaipur",
    "days": 2,
    "budget": 5000,
    "preferences": "",
    "itinerary": "Day 1: Amber Fort"
  }
]`
	if err := os.WriteFile(filepath.Join(dir, "Ravi_history.json"), []byte(legacy), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	got, err := s.Load(ctx, "Ravi")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 1 || got[0].City != "Jaipur" || got[0].Budget != 5000 {
		t.Fatalf("unexpected legacy load: %+v", got)
	}

	if err := s.Save(ctx, "../escape", nil); !errors.Is(err, ErrInvalidUser) {
		t.Fatalf("expected ErrInvalidUser for traversal name, got %v", err)
	}
}
