package repository

import (
	"context"
	"errors"

	"studio-app/internal/domain/visits"

	"gorm.io/gorm"
)

// Visits is the postgres-backed studio visit repository.
type Visits struct {
	db *gorm.DB
}

func NewVisits(db *gorm.DB) *Visits { return &Visits{db: db} }

func (r *Visits) List(ctx context.Context, artistID string) ([]visits.Visit, error) {
	var rows []visits.Row
	err := r.db.WithContext(ctx).
		Where("artist_id = ?", artistID).
		Order("date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]visits.Visit, 0, len(rows))
	for _, row := range rows {
		v, err := visits.FromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (r *Visits) Get(ctx context.Context, artistID, id string) (visits.Visit, error) {
	var row visits.Row
	err := r.db.WithContext(ctx).First(&row, "id = ? AND artist_id = ?", id, artistID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return visits.Visit{}, ErrNotFound
	}
	if err != nil {
		return visits.Visit{}, err
	}
	return visits.FromRow(row)
}

func (r *Visits) Create(ctx context.Context, artistID string, v visits.Visit) (visits.Visit, error) {
	v.ArtistID = artistID
	row, err := visits.ToRow(v)
	if err != nil {
		return visits.Visit{}, err
	}
	row.ID = ""

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return visits.Visit{}, err
	}
	return visits.FromRow(row)
}

func (r *Visits) Update(ctx context.Context, artistID, id string, v visits.Visit) (visits.Visit, error) {
	row, err := visits.ToRow(v)
	if err != nil {
		return visits.Visit{}, err
	}

	res := r.db.WithContext(ctx).
		Model(&visits.Row{}).
		Where("id = ? AND artist_id = ?", id, artistID).
		Select("*").
		Omit("id", "artist_id", "created_at").
		Updates(&row)
	if res.Error != nil {
		return visits.Visit{}, res.Error
	}
	if res.RowsAffected == 0 {
		return visits.Visit{}, ErrNotFound
	}
	return r.Get(ctx, artistID, id)
}

func (r *Visits) Delete(ctx context.Context, artistID, id string) error {
	res := r.db.WithContext(ctx).Delete(&visits.Row{}, "id = ? AND artist_id = ?", id, artistID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
