package commissions

import "studio-app/internal/domain/values"

// RequestDetailsInput is the form-facing request block with coercible
// dimensions.
type RequestDetailsInput struct {
	Type        string                 `json:"type"`
	Medium      string                 `json:"medium"`
	Dimensions  values.DimensionsInput `json:"dimensions"`
	Description string                 `json:"description"`
	Timeline    *Timeline              `json:"timeline"`
}

func (in RequestDetailsInput) details() RequestDetails {
	return RequestDetails{
		Type:        in.Type,
		Medium:      in.Medium,
		Dimensions:  in.Dimensions.Dimensions(),
		Description: in.Description,
		Timeline:    in.Timeline,
	}
}

type Draft struct {
	CollectorInfo  *values.ContactInfo  `json:"collectorInfo"`
	RequestDetails *RequestDetailsInput `json:"requestDetails"`
	Price          *values.Number       `json:"price"`
	Deposit        *values.Number       `json:"deposit"`
	Priority       *Priority            `json:"priority"`
	Notes          *string              `json:"notes"`
}

// New builds the entity a valid create draft describes; requests come in
// as new/normal.
func New(artistID string, d Draft) Commission {
	c := Commission{
		ArtistID: artistID,
		Status:   Machine.Initial,
		Priority: PriorityNormal,
	}
	d.Apply(&c)
	return c
}

// Apply copies the fields the draft carries onto the entity.
func (d Draft) Apply(c *Commission) {
	if d.CollectorInfo != nil {
		c.CollectorInfo = *d.CollectorInfo
	}
	if d.RequestDetails != nil {
		details := d.RequestDetails.details()
		if details.Dimensions.Unit == "" {
			details.Dimensions.Unit = c.RequestDetails.Dimensions.Unit
		}
		c.RequestDetails = details
	}
	if d.Price != nil {
		c.Price = d.Price.Ptr()
	}
	if d.Deposit != nil {
		c.Deposit = d.Deposit.Ptr()
	}
	if d.Priority != nil {
		c.Priority = *d.Priority
	}
	if d.Notes != nil {
		c.Notes = *d.Notes
	}
}
