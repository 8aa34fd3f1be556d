package establishment

import "time"

// Establishment is the tenant. Every employee, punch and vacation belongs to exactly one.
type Establishment struct {
	ID        string
	Name      string
	Timezone  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Location resolves the establishment timezone, falling back to fallback when unset or unknown
func (e Establishment) Location(fallback *time.Location) *time.Location {
	if e.Timezone == "" {
		return fallback
	}
	loc, err := time.LoadLocation(e.Timezone)
	if err != nil {
		return fallback
	}
	return loc
}
