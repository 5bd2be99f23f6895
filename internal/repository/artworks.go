package repository

import (
	"context"
	"errors"

	"studio-app/internal/domain/artworks"

	"gorm.io/gorm"
)

// Artworks is the postgres-backed artwork repository.
type Artworks struct {
	db *gorm.DB
}

func NewArtworks(db *gorm.DB) *Artworks { return &Artworks{db: db} }

func (r *Artworks) List(ctx context.Context, artistID string) ([]artworks.Artwork, error) {
	var rows []artworks.Row
	err := r.db.WithContext(ctx).
		Where("artist_id = ?", artistID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]artworks.Artwork, 0, len(rows))
	for _, row := range rows {
		a, err := artworks.FromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *Artworks) Get(ctx context.Context, artistID, id string) (artworks.Artwork, error) {
	var row artworks.Row
	err := r.db.WithContext(ctx).First(&row, "id = ? AND artist_id = ?", id, artistID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return artworks.Artwork{}, ErrNotFound
	}
	if err != nil {
		return artworks.Artwork{}, err
	}
	return artworks.FromRow(row)
}

func (r *Artworks) Create(ctx context.Context, artistID string, a artworks.Artwork) (artworks.Artwork, error) {
	a.ArtistID = artistID
	row, err := artworks.ToRow(a)
	if err != nil {
		return artworks.Artwork{}, err
	}
	row.ID = "" // storage assigns the identifier

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return artworks.Artwork{}, err
	}
	return artworks.FromRow(row)
}

func (r *Artworks) Update(ctx context.Context, artistID, id string, a artworks.Artwork) (artworks.Artwork, error) {
	row, err := artworks.ToRow(a)
	if err != nil {
		return artworks.Artwork{}, err
	}

	res := r.db.WithContext(ctx).
		Model(&artworks.Row{}).
		Where("id = ? AND artist_id = ?", id, artistID).
		Select("*").
		Omit("id", "artist_id", "created_at").
		Updates(&row)
	if res.Error != nil {
		return artworks.Artwork{}, res.Error
	}
	if res.RowsAffected == 0 {
		return artworks.Artwork{}, ErrNotFound
	}
	return r.Get(ctx, artistID, id)
}

func (r *Artworks) Delete(ctx context.Context, artistID, id string) error {
	res := r.db.WithContext(ctx).Delete(&artworks.Row{}, "id = ? AND artist_id = ?", id, artistID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
