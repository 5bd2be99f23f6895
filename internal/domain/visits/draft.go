package visits

import (
	"time"

	"studio-app/internal/domain/values"
)

type Draft struct {
	CollectorInfo       *values.ContactInfo `json:"collectorInfo"`
	Date                *time.Time          `json:"date"`
	Time                *string             `json:"time"`
	Reason              *string             `json:"reason"`
	InterestedArtworkID *string             `json:"interestedArtworkId"`
	Notes               *string             `json:"notes"`
	Reminders           *values.Reminders   `json:"reminders"`
}

// New builds the entity a valid create draft describes; visits come in
// pending.
func New(artistID string, d Draft) Visit {
	v := Visit{
		ArtistID: artistID,
		Status:   Machine.Initial,
	}
	d.Apply(&v)
	return v
}

// Apply copies the fields the draft carries onto the entity.
func (d Draft) Apply(v *Visit) {
	if d.CollectorInfo != nil {
		v.CollectorInfo = *d.CollectorInfo
	}
	if d.Date != nil {
		v.Date = *d.Date
	}
	if d.Time != nil {
		v.Time = *d.Time
	}
	if d.Reason != nil {
		v.Reason = *d.Reason
	}
	if d.InterestedArtworkID != nil {
		if *d.InterestedArtworkID == "" {
			v.InterestedArtworkID = nil
		} else {
			id := *d.InterestedArtworkID
			v.InterestedArtworkID = &id
		}
	}
	if d.Notes != nil {
		v.Notes = *d.Notes
	}
	if d.Reminders != nil {
		v.Reminders = *d.Reminders
	}
}
