package domain

import "time"

// Performance is a single staging of an event at a venue.
type Performance struct {
	Number           int
	Event            *Event
	VenueAddress     string
	StartsAt         time.Time
	EndsAt           time.Time
	Performers       []string
	SocialDistancing bool
	AirFiltration    bool
	Outdoors         bool
	Capacity         int
	VenueSize        int
}

// Overlaps reports whether t falls within [StartsAt, EndsAt], both
// endpoints included.
func (p *Performance) Overlaps(t time.Time) bool {
	return !t.Before(p.StartsAt) && !t.After(p.EndsAt)
}

// Within reports whether the performance lies inside [start, end], both
// endpoints included.
func (p *Performance) Within(start, end time.Time) bool {
	return !p.StartsAt.Before(start) && !p.EndsAt.After(end)
}

// SatisfiesPreferences reports whether the performance meets every set
// preference. A nil preference set is satisfied by anything.
func (p *Performance) SatisfiesPreferences(prefs *Preferences) bool {
	if prefs == nil {
		return true
	}
	if prefs.SocialDistancing && !p.SocialDistancing {
		return false
	}
	if prefs.AirFiltration && !p.AirFiltration {
		return false
	}
	if prefs.OutdoorsOnly && !p.Outdoors {
		return false
	}
	if prefs.MaxCapacity > 0 && p.Capacity > prefs.MaxCapacity {
		return false
	}
	if prefs.MaxVenueSize > 0 && p.VenueSize > prefs.MaxVenueSize {
		return false
	}
	return true
}

// Copy reconstructs the performance field by field, binding it to the
// given (already copied) event.
func (p *Performance) Copy(event *Event) *Performance {
	return &Performance{
		Number:           p.Number,
		Event:            event,
		VenueAddress:     p.VenueAddress,
		StartsAt:         p.StartsAt,
		EndsAt:           p.EndsAt,
		Performers:       append([]string(nil), p.Performers...),
		SocialDistancing: p.SocialDistancing,
		AirFiltration:    p.AirFiltration,
		Outdoors:         p.Outdoors,
		Capacity:         p.Capacity,
		VenueSize:        p.VenueSize,
	}
}
