// Package visits schedules studio visits by collectors.
package visits

import (
	"time"

	"studio-app/internal/domain/values"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

type Visit struct {
	ID            string             `json:"id"`
	ArtistID      string             `json:"artistId"`
	CollectorInfo values.ContactInfo `json:"collectorInfo"`
	Date          time.Time          `json:"date"`
	// Time is the local clock time of the appointment, e.g. "14:30".
	Time                string           `json:"time"`
	Status              Status           `json:"status"`
	Reason              string           `json:"reason,omitempty"`
	InterestedArtworkID *string          `json:"interestedArtworkId,omitempty"`
	Notes               string           `json:"notes,omitempty"`
	Reminders           values.Reminders `json:"reminders"`
	CreatedAt           time.Time        `json:"createdAt,omitempty"`
	UpdatedAt           time.Time        `json:"updatedAt,omitempty"`
}

func (v Visit) SearchFields() []string {
	return []string{v.CollectorInfo.Name, v.CollectorInfo.Email, v.Reason}
}

func (v Visit) StatusValue() string { return string(v.Status) }
