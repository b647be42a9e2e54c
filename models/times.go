package models

import "time"

const dateLayout = "2006-01-02"

// ParsedCreatedAt returns the creation timestamp as time.Time when possible.
func (p Project) ParsedCreatedAt() time.Time { return parseTime(p.CreatedAt) }

// ParsedUpdatedAt returns the last-modified timestamp as time.Time when possible.
func (p Project) ParsedUpdatedAt() time.Time { return parseTime(p.UpdatedAt) }

// ParsedCreatedAt returns the creation timestamp as time.Time when possible.
func (p ProjectStub) ParsedCreatedAt() time.Time { return parseTime(p.CreatedAt) }

// ParsedUpdatedAt returns the last-modified timestamp as time.Time when possible.
func (p ProjectStub) ParsedUpdatedAt() time.Time { return parseTime(p.UpdatedAt) }

// ParsedCreatedAt returns the creation timestamp as time.Time when possible.
func (t Tag) ParsedCreatedAt() time.Time { return parseTime(t.CreatedAt) }

// ParsedUpdatedAt returns the last-modified timestamp as time.Time when possible.
func (t Tag) ParsedUpdatedAt() time.Time { return parseTime(t.UpdatedAt) }

// ParsedCreatedAt returns the creation timestamp as time.Time when possible.
func (t Tally) ParsedCreatedAt() time.Time { return parseTime(t.CreatedAt) }

// ParsedUpdatedAt returns the last-modified timestamp as time.Time when possible.
func (t Tally) ParsedUpdatedAt() time.Time { return parseTime(t.UpdatedAt) }

// ParsedDate returns the tally date as time.Time when possible.
func (t Tally) ParsedDate() time.Time { return parseTime(t.Date) }

// ParsedDate returns the stat date as time.Time when possible.
func (s Stat) ParsedDate() time.Time { return parseTime(s.Date) }

func parseTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, dateLayout} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}
