package repository

import (
	"context"
	"errors"

	"studio-app/internal/domain/contacts"

	"gorm.io/gorm"
)

// Contacts is the postgres-backed contact repository.
type Contacts struct {
	db *gorm.DB
}

func NewContacts(db *gorm.DB) *Contacts { return &Contacts{db: db} }

func (r *Contacts) List(ctx context.Context, artistID string) ([]contacts.Contact, error) {
	var rows []contacts.Row
	err := r.db.WithContext(ctx).
		Where("artist_id = ?", artistID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]contacts.Contact, 0, len(rows))
	for _, row := range rows {
		c, err := contacts.FromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *Contacts) Get(ctx context.Context, artistID, id string) (contacts.Contact, error) {
	var row contacts.Row
	err := r.db.WithContext(ctx).First(&row, "id = ? AND artist_id = ?", id, artistID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return contacts.Contact{}, ErrNotFound
	}
	if err != nil {
		return contacts.Contact{}, err
	}
	return contacts.FromRow(row)
}

func (r *Contacts) Create(ctx context.Context, artistID string, c contacts.Contact) (contacts.Contact, error) {
	c.ArtistID = artistID
	row, err := contacts.ToRow(c)
	if err != nil {
		return contacts.Contact{}, err
	}
	row.ID = ""

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return contacts.Contact{}, err
	}
	return contacts.FromRow(row)
}

func (r *Contacts) Update(ctx context.Context, artistID, id string, c contacts.Contact) (contacts.Contact, error) {
	row, err := contacts.ToRow(c)
	if err != nil {
		return contacts.Contact{}, err
	}

	res := r.db.WithContext(ctx).
		Model(&contacts.Row{}).
		Where("id = ? AND artist_id = ?", id, artistID).
		Select("*").
		Omit("id", "artist_id", "created_at").
		Updates(&row)
	if res.Error != nil {
		return contacts.Contact{}, res.Error
	}
	if res.RowsAffected == 0 {
		return contacts.Contact{}, ErrNotFound
	}
	return r.Get(ctx, artistID, id)
}

func (r *Contacts) Delete(ctx context.Context, artistID, id string) error {
	res := r.db.WithContext(ctx).Delete(&contacts.Row{}, "id = ? AND artist_id = ?", id, artistID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
