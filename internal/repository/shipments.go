package repository

import (
	"context"
	"errors"

	"studio-app/internal/domain/shipments"

	"gorm.io/gorm"
)

// Shipments is the postgres-backed shipment repository.
type Shipments struct {
	db *gorm.DB
}

func NewShipments(db *gorm.DB) *Shipments { return &Shipments{db: db} }

func (r *Shipments) List(ctx context.Context, artistID string) ([]shipments.Shipment, error) {
	var rows []shipments.Row
	err := r.db.WithContext(ctx).
		Where("artist_id = ?", artistID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]shipments.Shipment, 0, len(rows))
	for _, row := range rows {
		s, err := shipments.FromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *Shipments) Get(ctx context.Context, artistID, id string) (shipments.Shipment, error) {
	var row shipments.Row
	err := r.db.WithContext(ctx).First(&row, "id = ? AND artist_id = ?", id, artistID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return shipments.Shipment{}, ErrNotFound
	}
	if err != nil {
		return shipments.Shipment{}, err
	}
	return shipments.FromRow(row)
}

func (r *Shipments) Create(ctx context.Context, artistID string, s shipments.Shipment) (shipments.Shipment, error) {
	s.ArtistID = artistID
	row, err := shipments.ToRow(s)
	if err != nil {
		return shipments.Shipment{}, err
	}
	row.ID = ""

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return shipments.Shipment{}, err
	}
	return shipments.FromRow(row)
}

func (r *Shipments) Update(ctx context.Context, artistID, id string, s shipments.Shipment) (shipments.Shipment, error) {
	row, err := shipments.ToRow(s)
	if err != nil {
		return shipments.Shipment{}, err
	}

	res := r.db.WithContext(ctx).
		Model(&shipments.Row{}).
		Where("id = ? AND artist_id = ?", id, artistID).
		Select("*").
		Omit("id", "artist_id", "created_at").
		Updates(&row)
	if res.Error != nil {
		return shipments.Shipment{}, res.Error
	}
	if res.RowsAffected == 0 {
		return shipments.Shipment{}, ErrNotFound
	}
	return r.Get(ctx, artistID, id)
}

func (r *Shipments) Delete(ctx context.Context, artistID, id string) error {
	res := r.db.WithContext(ctx).Delete(&shipments.Row{}, "id = ? AND artist_id = ?", id, artistID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
