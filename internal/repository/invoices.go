package repository

import (
	"context"
	"errors"

	"studio-app/internal/domain/invoices"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Invoices is the postgres-backed invoice repository. Create assigns the
// next sequential number scoped to the seller; the number is immutable
// afterwards.
type Invoices struct {
	db *gorm.DB
}

func NewInvoices(db *gorm.DB) *Invoices { return &Invoices{db: db} }

func (r *Invoices) List(ctx context.Context, artistID string) ([]invoices.Invoice, error) {
	var rows []invoices.Row
	err := r.db.WithContext(ctx).
		Where("seller_id = ?", artistID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]invoices.Invoice, 0, len(rows))
	for _, row := range rows {
		i, err := invoices.FromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, i)
	}
	return out, nil
}

func (r *Invoices) Get(ctx context.Context, artistID, id string) (invoices.Invoice, error) {
	var row invoices.Row
	err := r.db.WithContext(ctx).First(&row, "id = ? AND seller_id = ?", id, artistID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return invoices.Invoice{}, ErrNotFound
	}
	if err != nil {
		return invoices.Invoice{}, err
	}
	return invoices.FromRow(row)
}

func (r *Invoices) Create(ctx context.Context, artistID string, i invoices.Invoice) (invoices.Invoice, error) {
	i.SellerID = artistID
	row, err := invoices.ToRow(i)
	if err != nil {
		return invoices.Invoice{}, err
	}
	row.ID = ""

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Lock the seller's latest invoice so two concurrent creates
		// cannot be handed the same number.
		var last invoices.Row
		e := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("seller_id = ?", artistID).
			Order("number DESC").
			First(&last).Error
		if e != nil && !errors.Is(e, gorm.ErrRecordNotFound) {
			return e
		}

		row.Number = invoices.FormatNumber(invoices.SequenceOf(last.Number) + 1)
		return tx.Create(&row).Error
	})
	if err != nil {
		return invoices.Invoice{}, err
	}
	return invoices.FromRow(row)
}

func (r *Invoices) Update(ctx context.Context, artistID, id string, i invoices.Invoice) (invoices.Invoice, error) {
	row, err := invoices.ToRow(i)
	if err != nil {
		return invoices.Invoice{}, err
	}

	res := r.db.WithContext(ctx).
		Model(&invoices.Row{}).
		Where("id = ? AND seller_id = ?", id, artistID).
		Select("*").
		Omit("id", "seller_id", "number", "created_at").
		Updates(&row)
	if res.Error != nil {
		return invoices.Invoice{}, res.Error
	}
	if res.RowsAffected == 0 {
		return invoices.Invoice{}, ErrNotFound
	}
	return r.Get(ctx, artistID, id)
}

func (r *Invoices) Delete(ctx context.Context, artistID, id string) error {
	res := r.db.WithContext(ctx).Delete(&invoices.Row{}, "id = ? AND seller_id = ?", id, artistID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// AnyOpenForArtwork reports whether an unpaid invoice still references
// the artwork. Artworks may not be deleted while one exists.
func (r *Invoices) AnyOpenForArtwork(ctx context.Context, artistID, artworkID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&invoices.Row{}).
		Where("seller_id = ? AND artwork_id = ? AND status <> ?", artistID, artworkID, string(invoices.StatusPaid)).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
