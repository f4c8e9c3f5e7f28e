package schedule

import "testing"

func TestDays(t *testing.T) {
	days := Days()
	if len(days) != 4 {
		t.Fatalf("Days() = %v, want 4 days", days)
	}
	if days[0] != "day1" || days[3] != "day4" {
		t.Errorf("Days() = %v, want day1..day4 in order", days)
	}

	// Callers must not be able to mutate the enumeration.
	days[0] = "tampered"
	if Days()[0] != "day1" {
		t.Error("Days() returned a shared slice")
	}
}

func TestLoad(t *testing.T) {
	for _, day := range Days() {
		t.Run(day, func(t *testing.T) {
			sessions := Load(day)
			if len(sessions) == 0 {
				t.Fatalf("Load(%s) is empty", day)
			}

			seen := make(map[string]bool)
			for _, s := range sessions {
				if err := s.Validate(); err != nil {
					t.Errorf("session %q invalid: %v", s.Title, err)
				}
				if seen[s.Title] {
					t.Errorf("duplicate title %q (titles are the favorite identity key)", s.Title)
				}
				seen[s.Title] = true
				if _, err := s.Start(); err != nil {
					t.Errorf("session %q start unparsable: %v", s.Title, err)
				}
				if _, err := s.End(); err != nil {
					t.Errorf("session %q end unparsable: %v", s.Title, err)
				}
			}
		})
	}
}

func TestLoadUnknownDay(t *testing.T) {
	if got := Load("day9"); got == nil || len(got) != 0 {
		t.Errorf("Load(day9) = %v, want empty non-nil list", got)
	}
}
