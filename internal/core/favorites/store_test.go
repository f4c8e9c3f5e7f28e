package favorites

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "favorites.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestLoadEmptyDay(t *testing.T) {
	s := openTestStore(t)

	titles := s.Load("day1")
	if titles == nil {
		t.Fatal("Load() should return an empty slice, not nil")
	}
	if len(titles) != 0 {
		t.Errorf("Load() on fresh store = %v, want empty", titles)
	}
}

func TestToggleRoundTrip(t *testing.T) {
	s := openTestStore(t)

	got, err := s.Toggle("day1", "Opening Keynote")
	if err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}
	if len(got) != 1 || got[0] != "Opening Keynote" {
		t.Fatalf("Toggle() = %v, want [Opening Keynote]", got)
	}

	// Round-trip through persistence.
	if loaded := s.Load("day1"); !Contains(loaded, "Opening Keynote") {
		t.Errorf("Load() after Toggle() = %v, missing toggled title", loaded)
	}
}

func TestDoubleToggleIsIdempotent(t *testing.T) {
	s := openTestStore(t)

	if _, err := s.Toggle("day1", "Opening Keynote"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Toggle("day1", "Lightning Talks"); err != nil {
		t.Fatal(err)
	}

	// Toggle the same title twice: the set must come back to where it was.
	if _, err := s.Toggle("day1", "Opening Keynote"); err != nil {
		t.Fatal(err)
	}
	got, err := s.Toggle("day1", "Opening Keynote")
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"Lightning Talks", "Opening Keynote"}
	if len(got) != len(want) {
		t.Fatalf("set after double toggle = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("set[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFavoritesAreScopedPerDay(t *testing.T) {
	s := openTestStore(t)

	if _, err := s.Toggle("day1", "Opening Keynote"); err != nil {
		t.Fatal(err)
	}

	// A colliding title on day2 must not inherit day1 state.
	if day2 := s.Load("day2"); len(day2) != 0 {
		t.Errorf("day2 favorites = %v, want empty (no cross-day leakage)", day2)
	}

	if _, err := s.Toggle("day2", "Opening Keynote"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Toggle("day2", "Opening Keynote"); err != nil {
		t.Fatal(err)
	}

	// Removing it from day2 leaves day1 untouched.
	if day1 := s.Load("day1"); !Contains(day1, "Opening Keynote") {
		t.Errorf("day1 favorites = %v, want Opening Keynote still present", day1)
	}
}

func TestClear(t *testing.T) {
	s := openTestStore(t)

	if _, err := s.Toggle("day3", "Closing Panel"); err != nil {
		t.Fatal(err)
	}
	if err := s.Clear("day3"); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if got := s.Load("day3"); len(got) != 0 {
		t.Errorf("Load() after Clear() = %v, want empty", got)
	}
}

func TestCorruptValueDegradesToEmpty(t *testing.T) {
	s := openTestStore(t)

	if _, err := s.conn.Exec(`INSERT INTO favorites (day, titles) VALUES ('day1', 'not json')`); err != nil {
		t.Fatal(err)
	}

	if got := s.Load("day1"); len(got) != 0 {
		t.Errorf("Load() on corrupt row = %v, want empty set", got)
	}

	// Toggling on top of a corrupt row starts from empty and repairs it.
	got, err := s.Toggle("day1", "Opening Keynote")
	if err != nil {
		t.Fatalf("Toggle() on corrupt row error = %v", err)
	}
	if len(got) != 1 || got[0] != "Opening Keynote" {
		t.Errorf("Toggle() on corrupt row = %v, want [Opening Keynote]", got)
	}
}
