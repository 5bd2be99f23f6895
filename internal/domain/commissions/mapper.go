package commissions

import (
	"fmt"

	"studio-app/internal/domain/values"
)

// ToRow serializes a commission for storage.
func ToRow(c Commission) (Row, error) {
	r := Row{
		ID:        c.ID,
		ArtistID:  c.ArtistID,
		Price:     c.Price,
		Deposit:   c.Deposit,
		Status:    string(c.Status),
		Priority:  string(c.Priority),
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}

	var err error
	if r.CollectorInfo, err = values.MarshalColumn(c.CollectorInfo); err != nil {
		return Row{}, err
	}
	if r.RequestDetails, err = values.MarshalColumn(c.RequestDetails); err != nil {
		return Row{}, err
	}
	return r, nil
}

// FromRow reconstructs the entity with defaults for status, priority,
// and the dimension unit.
func FromRow(r Row) (Commission, error) {
	c := Commission{
		ID:        r.ID,
		ArtistID:  r.ArtistID,
		Price:     r.Price,
		Deposit:   r.Deposit,
		Status:    Status(r.Status),
		Priority:  Priority(r.Priority),
		Notes:     r.Notes,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}

	if err := values.UnmarshalColumn(r.CollectorInfo, &c.CollectorInfo); err != nil {
		return Commission{}, fmt.Errorf("commission %s: collector_info: %w", r.ID, err)
	}
	if err := values.UnmarshalColumn(r.RequestDetails, &c.RequestDetails); err != nil {
		return Commission{}, fmt.Errorf("commission %s: request_details: %w", r.ID, err)
	}

	if c.RequestDetails.Dimensions.Unit == "" {
		c.RequestDetails.Dimensions.Unit = values.UnitInch
	}
	if c.Status == "" {
		c.Status = StatusNew
	}
	if c.Priority == "" {
		c.Priority = PriorityNormal
	}
	return c, nil
}
