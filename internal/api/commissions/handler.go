package commissions

import (
	"errors"
	"net/http"

	"studio-app/database"
	"studio-app/internal/domain/commissions"
	"studio-app/internal/domain/lifecycle"
	"studio-app/internal/domain/query"
	"studio-app/internal/domain/validate"
	"studio-app/internal/repository"

	"github.com/gin-gonic/gin"
)

type TransitionRequest struct {
	Status string `json:"status" binding:"required"`
}

func mustArtistID(c *gin.Context) (string, bool) {
	artistID := c.GetString("artist_id")
	if artistID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return artistID, true
}

// GET /commissions
func ListCommissions(c *gin.Context) {
	artistID, ok := mustArtistID(c)
	if !ok {
		return
	}

	repo := repository.NewCommissions(database.DB)
	items, err := repo.List(c.Request.Context(), artistID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load commissions"})
		return
	}

	items = query.Filter(items, query.Spec{
		Query:  c.Query("q"),
		Status: c.Query("status"),
	})
	c.JSON(http.StatusOK, items)
}

// GET /commissions/:id
func GetCommission(c *gin.Context) {
	artistID, ok := mustArtistID(c)
	if !ok {
		return
	}

	repo := repository.NewCommissions(database.DB)
	item, err := repo.Get(c.Request.Context(), artistID, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Commission not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load commission"})
		return
	}
	c.JSON(http.StatusOK, item)
}

// POST /commissions
func CreateCommission(c *gin.Context) {
	artistID, ok := mustArtistID(c)
	if !ok {
		return
	}

	var draft commissions.Draft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if violations := commissions.Validate(draft, validate.Create); len(violations) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": violations})
		return
	}

	entity := commissions.New(artistID, draft)
	if violations := commissions.Check(entity); len(violations) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": violations})
		return
	}

	repo := repository.NewCommissions(database.DB)
	created, err := repo.Create(c.Request.Context(), artistID, entity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create commission"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// PUT /commissions/:id
func UpdateCommission(c *gin.Context) {
	artistID, ok := mustArtistID(c)
	if !ok {
		return
	}

	var draft commissions.Draft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if violations := commissions.Validate(draft, validate.Update); len(violations) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": violations})
		return
	}

	repo := repository.NewCommissions(database.DB)
	item, err := repo.Get(c.Request.Context(), artistID, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Commission not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load commission"})
		return
	}

	draft.Apply(&item)
	if violations := commissions.Check(item); len(violations) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": violations})
		return
	}

	updated, err := repo.Update(c.Request.Context(), artistID, item.ID, item)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update commission"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DELETE /commissions/:id
func DeleteCommission(c *gin.Context) {
	artistID, ok := mustArtistID(c)
	if !ok {
		return
	}

	repo := repository.NewCommissions(database.DB)
	if err := repo.Delete(c.Request.Context(), artistID, c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Commission not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete commission"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// PUT /commissions/:id/status
func TransitionCommission(c *gin.Context) {
	artistID, ok := mustArtistID(c)
	if !ok {
		return
	}

	var req TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	repo := repository.NewCommissions(database.DB)
	item, err := repo.Get(c.Request.Context(), artistID, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Commission not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load commission"})
		return
	}

	if err := commissions.Transition(&item, commissions.Status(req.Status)); err != nil {
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
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update commission"})
		return
	}
	c.JSON(http.StatusOK, updated)
}
