package invoices

import (
	"errors"
	"net/http"
	"time"

	"studio-app/database"
	"studio-app/internal/domain/invoices"
	"studio-app/internal/domain/lifecycle"
	"studio-app/internal/domain/query"
	"studio-app/internal/domain/validate"
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

// GET /invoices
func ListInvoices(c *gin.Context) {
	artistID, ok := mustArtistID(c)
	if !ok {
		return
	}

	repo := repository.NewInvoices(database.DB)
	items, err := repo.List(c.Request.Context(), artistID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load invoices"})
		return
	}

	// Filter after projection so ?status=overdue matches what the
	// response bodies show.
	now := time.Now()
	out := make([]InvoiceResponse, 0, len(items))
	for _, i := range items {
		out = append(out, toResponse(i, now))
	}
	out = query.Filter(out, query.Spec{
		Query:  c.Query("q"),
		Status: c.Query("status"),
	})
	c.JSON(http.StatusOK, out)
}

// GET /invoices/:id
func GetInvoice(c *gin.Context) {
	artistID, ok := mustArtistID(c)
	if !ok {
		return
	}

	repo := repository.NewInvoices(database.DB)
	item, err := repo.Get(c.Request.Context(), artistID, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load invoice"})
		return
	}
	c.JSON(http.StatusOK, toResponse(item, time.Now()))
}

// POST /invoices
func CreateInvoice(c *gin.Context) {
	artistID, ok := mustArtistID(c)
	if !ok {
		return
	}

	var draft invoices.Draft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if violations := invoices.Validate(draft, validate.Create); len(violations) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": violations})
		return
	}

	repo := repository.NewInvoices(database.DB)
	created, err := repo.Create(c.Request.Context(), artistID, invoices.New(artistID, draft))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create invoice"})
		return
	}
	c.JSON(http.StatusCreated, toResponse(created, time.Now()))
}

// PUT /invoices/:id
func UpdateInvoice(c *gin.Context) {
	artistID, ok := mustArtistID(c)
	if !ok {
		return
	}

	var draft invoices.Draft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if violations := invoices.Validate(draft, validate.Update); len(violations) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": violations})
		return
	}

	repo := repository.NewInvoices(database.DB)
	item, err := repo.Get(c.Request.Context(), artistID, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load invoice"})
		return
	}

	draft.Apply(&item)
	updated, err := repo.Update(c.Request.Context(), artistID, item.ID, item)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update invoice"})
		return
	}
	c.JSON(http.StatusOK, toResponse(updated, time.Now()))
}

// DELETE /invoices/:id
func DeleteInvoice(c *gin.Context) {
	artistID, ok := mustArtistID(c)
	if !ok {
		return
	}

	repo := repository.NewInvoices(database.DB)
	if err := repo.Delete(c.Request.Context(), artistID, c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete invoice"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// PUT /invoices/:id/status
// Only stored statuses move here; "overdue" is a projection and is
// rejected like any other unreachable state.
func TransitionInvoice(c *gin.Context) {
	artistID, ok := mustArtistID(c)
	if !ok {
		return
	}

	var req TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	repo := repository.NewInvoices(database.DB)
	item, err := repo.Get(c.Request.Context(), artistID, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load invoice"})
		return
	}

	if err := invoices.Transition(&item, invoices.Status(req.Status)); err != nil {
		var te *lifecycle.TransitionError
		if errors.As(err, &te) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": te.Error(), "from": te.From, "to": te.To})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to change status"})
		return
	}

	updated, err := repo.Update(c.Request.Context(), artistID, item.ID, item)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update invoice"})
		return
	}
	c.JSON(http.StatusOK, toResponse(updated, time.Now()))
}
