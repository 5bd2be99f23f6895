package artworks

import (
	"errors"
	"net/http"
	"time"

	"studio-app/database"
	"studio-app/internal/domain/artworks"
	"studio-app/internal/domain/lifecycle"
	"studio-app/internal/domain/query"
	"studio-app/internal/domain/validate"
	"studio-app/internal/domain/values"
	"studio-app/internal/repository"

	"github.com/gin-gonic/gin"
)

func mustArtistID(c *gin.Context) (string, bool) {
	artistID := c.GetString("artist_id")
	if artistID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return artistID, true
}

// GET /artworks
func ListArtworks(c *gin.Context) {
	artistID, ok := mustArtistID(c)
	if !ok {
		return
	}

	repo := repository.NewArtworks(database.DB)
	items, err := repo.List(c.Request.Context(), artistID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artworks"})
		return
	}

	items = query.Filter(items, query.Spec{
		Query:      c.Query("q"),
		Status:     c.Query("status"),
		Visibility: c.Query("visibility"),
	})
	c.JSON(http.StatusOK, items)
}

// GET /artworks/:id
func GetArtwork(c *gin.Context) {
	artistID, ok := mustArtistID(c)
	if !ok {
		return
	}

	repo := repository.NewArtworks(database.DB)
	a, err := repo.Get(c.Request.Context(), artistID, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artwork"})
		return
	}
	c.JSON(http.StatusOK, a)
}

// POST /artworks
func CreateArtwork(c *gin.Context) {
	artistID, ok := mustArtistID(c)
	if !ok {
		return
	}

	var draft artworks.Draft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if violations := artworks.Validate(draft, validate.Create); len(violations) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": violations})
		return
	}

	a := artworks.New(artistID, draft)
	if violations := artworks.Check(a); len(violations) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": violations})
		return
	}

	repo := repository.NewArtworks(database.DB)
	created, err := repo.Create(c.Request.Context(), artistID, a)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create artwork"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// PUT /artworks/:id
func UpdateArtwork(c *gin.Context) {
	artistID, ok := mustArtistID(c)
	if !ok {
		return
	}

	var draft artworks.Draft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if violations := artworks.Validate(draft, validate.Update); len(violations) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": violations})
		return
	}

	repo := repository.NewArtworks(database.DB)
	a, err := repo.Get(c.Request.Context(), artistID, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artwork"})
		return
	}

	draft.Apply(&a)
	if violations := artworks.Check(a); len(violations) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": violations})
		return
	}

	updated, err := repo.Update(c.Request.Context(), artistID, a.ID, a)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update artwork"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DELETE /artworks/:id
// Refused while an open invoice still references the work.
func DeleteArtwork(c *gin.Context) {
	artistID, ok := mustArtistID(c)
	if !ok {
		return
	}
	id := c.Param("id")

	invoiceRepo := repository.NewInvoices(database.DB)
	open, err := invoiceRepo.AnyOpenForArtwork(c.Request.Context(), artistID, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check invoices"})
		return
	}
	if open {
		c.JSON(http.StatusConflict, gin.H{"error": "Artwork is referenced by an open invoice"})
		return
	}

	repo := repository.NewArtworks(database.DB)
	if err := repo.Delete(c.Request.Context(), artistID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete artwork"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// PUT /artworks/:id/status
func TransitionArtwork(c *gin.Context) {
	artistID, ok := mustArtistID(c)
	if !ok {
		return
	}

	var req TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	repo := repository.NewArtworks(database.DB)
	a, err := repo.Get(c.Request.Context(), artistID, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artwork"})
		return
	}

	if err := artworks.Transition(&a, artworks.Status(req.Status)); err != nil {
		var te *lifecycle.TransitionError
		if errors.As(err, &te) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": te.Error(), "from": te.From, "to": te.To})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to change status"})
		return
	}

	updated, err := repo.Update(c.Request.Context(), artistID, a.ID, a)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update artwork"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// POST /artworks/:id/sale
// Entering sold and recording the sale happen in one step.
func RecordArtworkSale(c *gin.Context) {
	artistID, ok := mustArtistID(c)
	if !ok {
		return
	}

	var req SaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Price.Or(0) < 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": []string{"Price cannot be negative"}})
		return
	}

	repo := repository.NewArtworks(database.DB)
	a, err := repo.Get(c.Request.Context(), artistID, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artwork"})
		return
	}

	date := time.Now()
	if req.Date != nil {
		date = *req.Date
	}
	sale := values.SaleRecord{
		Date:          date,
		Price:         req.Price.Or(0),
		CertificateID: req.CertificateID,
		Provenance:    req.Provenance,
	}

	if err := artworks.RecordSale(&a, sale); err != nil {
		var te *lifecycle.TransitionError
		if errors.As(err, &te) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": te.Error(), "from": te.From, "to": te.To})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record sale"})
		return
	}
	if req.NewOwner != "" {
		a.CurrentOwner = req.NewOwner
	}

	updated, err := repo.Update(c.Request.Context(), artistID, a.ID, a)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update artwork"})
		return
	}
	c.JSON(http.StatusOK, updated)
}
