package models

import (
	"errors"
	"time"
)

// Session represents one scheduled conference talk or event
type Session struct {
	Title     string   `json:"title"`
	Type      string   `json:"type,omitempty"`
	Location  string   `json:"location"`
	Speakers  string   `json:"speakers,omitempty"`
	StartTime string   `json:"startTime"` // RFC 3339
	EndTime   string   `json:"endTime"`   // RFC 3339
	Timezone  string   `json:"timezone,omitempty"`
	Tags      []string `json:"tags,omitempty"`
}

// Validate checks if the session has required fields
func (s *Session) Validate() error {
	if s.Title == "" {
		return errors.New("title is required")
	}
	if s.Location == "" {
		return errors.New("location is required")
	}
	if s.StartTime == "" {
		return errors.New("startTime is required")
	}
	if s.EndTime == "" {
		return errors.New("endTime is required")
	}
	return nil
}

// Start parses the session start timestamp.
func (s *Session) Start() (time.Time, error) {
	return time.Parse(time.RFC3339, s.StartTime)
}

// End parses the session end timestamp.
func (s *Session) End() (time.Time, error) {
	return time.Parse(time.RFC3339, s.EndTime)
}

// DurationHours returns the session length in fractional hours
// (0.5 for a half-hour talk). Errors if either timestamp is unparsable.
func (s *Session) DurationHours() (float64, error) {
	start, err := s.Start()
	if err != nil {
		return 0, err
	}
	end, err := s.End()
	if err != nil {
		return 0, err
	}
	return end.Sub(start).Hours(), nil
}
