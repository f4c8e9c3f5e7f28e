package models

import (
	"testing"
)

func TestSessionValidation(t *testing.T) {
	tests := []struct {
		name    string
		session Session
		wantErr bool
	}{
		{
			name: "valid session",
			session: Session{
				Title:     "Opening Keynote",
				Location:  "Hall A",
				StartTime: "2024-12-02T09:00:00+09:00",
				EndTime:   "2024-12-02T10:00:00+09:00",
			},
			wantErr: false,
		},
		{
			name: "missing title",
			session: Session{
				Location:  "Hall A",
				StartTime: "2024-12-02T09:00:00+09:00",
				EndTime:   "2024-12-02T10:00:00+09:00",
			},
			wantErr: true,
		},
		{
			name: "missing location",
			session: Session{
				Title:     "Opening Keynote",
				StartTime: "2024-12-02T09:00:00+09:00",
				EndTime:   "2024-12-02T10:00:00+09:00",
			},
			wantErr: true,
		},
		{
			name: "missing timestamps",
			session: Session{
				Title:    "Opening Keynote",
				Location: "Hall A",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.session.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDurationHours(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		want    float64
		wantErr bool
	}{
		{"one hour", "2024-12-02T09:00:00+09:00", "2024-12-02T10:00:00+09:00", 1.0, false},
		{"half hour", "2024-12-02T09:00:00+09:00", "2024-12-02T09:30:00+09:00", 0.5, false},
		{"ninety minutes", "2024-12-02T13:00:00+09:00", "2024-12-02T14:30:00+09:00", 1.5, false},
		{"end before start", "2024-12-02T10:00:00+09:00", "2024-12-02T09:30:00+09:00", -0.5, false},
		{"garbage start", "not-a-time", "2024-12-02T10:00:00+09:00", 0, true},
		{"garbage end", "2024-12-02T10:00:00+09:00", "later", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Session{Title: "t", Location: "l", StartTime: tt.start, EndTime: tt.end}
			got, err := s.DurationHours()
			if (err != nil) != tt.wantErr {
				t.Fatalf("DurationHours() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("DurationHours() = %v, want %v", got, tt.want)
			}
		})
	}
}
