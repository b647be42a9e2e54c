package models

// Stat is a per-day aggregate of progress counters. It is a derived, read-only
// projection and carries no identity of its own.
type Stat struct {
	Date   string  `json:"date"`
	Counts Balance `json:"counts"`
}

// BuildStat constructs a Stat from a decoded JSON object.
func BuildStat(data map[string]any) (Stat, error) {
	raw := newRawObject(data)
	stat := Stat{
		Date:   raw.str("date"),
		Counts: raw.balance("counts"),
	}
	if raw.err != nil {
		return Stat{}, buildError("Stat", data, raw.err)
	}
	return stat, nil
}
