// Package commissions tracks incoming commission requests from
// collectors. The collector is an embedded copy, not a reference to a
// contact record.
package commissions

import (
	"time"

	"studio-app/internal/domain/values"
)

type Status string

const (
	StatusNew        Status = "new"
	StatusReview     Status = "review"
	StatusAccepted   Status = "accepted"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusDeferred   Status = "deferred"
	StatusDeclined   Status = "declined"
)

type Priority string

const (
	PriorityNormal Priority = "normal"
	PriorityUrgent Priority = "urgent"
	PriorityRush   Priority = "rush"
)

// Timeline is the requested completion window.
type Timeline struct {
	RequestedCompletion time.Time `json:"requestedCompletion"`
}

// RequestDetails describes the work being asked for.
type RequestDetails struct {
	Type        string            `json:"type"`
	Medium      string            `json:"medium,omitempty"`
	Dimensions  values.Dimensions `json:"dimensions"`
	Description string            `json:"description"`
	Timeline    *Timeline         `json:"timeline,omitempty"`
}

type Commission struct {
	ID             string             `json:"id"`
	ArtistID       string             `json:"artistId"`
	CollectorInfo  values.ContactInfo `json:"collectorInfo"`
	RequestDetails RequestDetails     `json:"requestDetails"`
	Price          *float64           `json:"price,omitempty"`
	Deposit        *float64           `json:"deposit,omitempty"`
	Status         Status             `json:"status"`
	Priority       Priority           `json:"priority"`
	Notes          string             `json:"notes,omitempty"`
	CreatedAt      time.Time          `json:"createdAt,omitempty"`
	UpdatedAt      time.Time          `json:"updatedAt,omitempty"`
}

func (c Commission) SearchFields() []string {
	return []string{
		c.CollectorInfo.Name, c.CollectorInfo.Email,
		c.RequestDetails.Type, c.RequestDetails.Medium, c.RequestDetails.Description,
	}
}

func (c Commission) StatusValue() string { return string(c.Status) }
