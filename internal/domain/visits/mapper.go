package visits

import (
	"fmt"

	"studio-app/internal/domain/values"
)

// ToRow serializes a visit for storage.
func ToRow(v Visit) (Row, error) {
	r := Row{
		ID:                  v.ID,
		ArtistID:            v.ArtistID,
		Date:                v.Date,
		Time:                v.Time,
		Status:              string(v.Status),
		Reason:              v.Reason,
		InterestedArtworkID: v.InterestedArtworkID,
		Notes:               v.Notes,
		CreatedAt:           v.CreatedAt,
		UpdatedAt:           v.UpdatedAt,
	}

	var err error
	if r.CollectorInfo, err = values.MarshalColumn(v.CollectorInfo); err != nil {
		return Row{}, err
	}
	if r.Reminders, err = values.MarshalColumn(v.Reminders); err != nil {
		return Row{}, err
	}
	return r, nil
}

// FromRow reconstructs the entity; a blank stored status reads as
// pending.
func FromRow(r Row) (Visit, error) {
	v := Visit{
		ID:                  r.ID,
		ArtistID:            r.ArtistID,
		Date:                r.Date,
		Time:                r.Time,
		Status:              Status(r.Status),
		Reason:              r.Reason,
		InterestedArtworkID: r.InterestedArtworkID,
		Notes:               r.Notes,
		CreatedAt:           r.CreatedAt,
		UpdatedAt:           r.UpdatedAt,
	}

	if err := values.UnmarshalColumn(r.CollectorInfo, &v.CollectorInfo); err != nil {
		return Visit{}, fmt.Errorf("studio visit %s: collector_info: %w", r.ID, err)
	}
	if err := values.UnmarshalColumn(r.Reminders, &v.Reminders); err != nil {
		return Visit{}, fmt.Errorf("studio visit %s: reminders: %w", r.ID, err)
	}

	if v.Status == "" {
		v.Status = StatusPending
	}
	return v, nil
}
