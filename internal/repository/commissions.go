package repository

import (
	"context"
	"errors"

	"studio-app/internal/domain/commissions"

	"gorm.io/gorm"
)

// Commissions is the postgres-backed commission repository.
type Commissions struct {
	db *gorm.DB
}

func NewCommissions(db *gorm.DB) *Commissions { return &Commissions{db: db} }

func (r *Commissions) List(ctx context.Context, artistID string) ([]commissions.Commission, error) {
	var rows []commissions.Row
	err := r.db.WithContext(ctx).
		Where("artist_id = ?", artistID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]commissions.Commission, 0, len(rows))
	for _, row := range rows {
		c, err := commissions.FromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *Commissions) Get(ctx context.Context, artistID, id string) (commissions.Commission, error) {
	var row commissions.Row
	err := r.db.WithContext(ctx).First(&row, "id = ? AND artist_id = ?", id, artistID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return commissions.Commission{}, ErrNotFound
	}
	if err != nil {
		return commissions.Commission{}, err
	}
	return commissions.FromRow(row)
}

func (r *Commissions) Create(ctx context.Context, artistID string, c commissions.Commission) (commissions.Commission, error) {
	c.ArtistID = artistID
	row, err := commissions.ToRow(c)
	if err != nil {
		return commissions.Commission{}, err
	}
	row.ID = ""

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return commissions.Commission{}, err
	}
	return commissions.FromRow(row)
}

func (r *Commissions) Update(ctx context.Context, artistID, id string, c commissions.Commission) (commissions.Commission, error) {
	row, err := commissions.ToRow(c)
	if err != nil {
		return commissions.Commission{}, err
	}

	res := r.db.WithContext(ctx).
		Model(&commissions.Row{}).
		Where("id = ? AND artist_id = ?", id, artistID).
		Select("*").
		Omit("id", "artist_id", "created_at").
		Updates(&row)
	if res.Error != nil {
		return commissions.Commission{}, res.Error
	}
	if res.RowsAffected == 0 {
		return commissions.Commission{}, ErrNotFound
	}
	return r.Get(ctx, artistID, id)
}

func (r *Commissions) Delete(ctx context.Context, artistID, id string) error {
	res := r.db.WithContext(ctx).Delete(&commissions.Row{}, "id = ? AND artist_id = ?", id, artistID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
