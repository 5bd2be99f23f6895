package shipments

import (
	"errors"
	"net/http"

	"studio-app/database"
	"studio-app/internal/domain/lifecycle"
	"studio-app/internal/domain/query"
	"studio-app/internal/domain/shipments"
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

// GET /shipments
func ListShipments(c *gin.Context) {
	artistID, ok := mustArtistID(c)
	if !ok {
		return
	}

	repo := repository.NewShipments(database.DB)
	items, err := repo.List(c.Request.Context(), artistID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load shipments"})
		return
	}

	items = query.Filter(items, query.Spec{
		Query:  c.Query("q"),
		Status: c.Query("status"),
	})
	c.JSON(http.StatusOK, items)
}

// GET /shipments/:id
func GetShipment(c *gin.Context) {
	artistID, ok := mustArtistID(c)
	if !ok {
		return
	}

	repo := repository.NewShipments(database.DB)
	item, err := repo.Get(c.Request.Context(), artistID, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Shipment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load shipment"})
		return
	}
	c.JSON(http.StatusOK, item)
}

// POST /shipments
func CreateShipment(c *gin.Context) {
	artistID, ok := mustArtistID(c)
	if !ok {
		return
	}

	var draft shipments.Draft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if violations := shipments.Validate(draft, validate.Create); len(violations) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": violations})
		return
	}

	repo := repository.NewShipments(database.DB)
	created, err := repo.Create(c.Request.Context(), artistID, shipments.New(artistID, draft))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create shipment"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// PUT /shipments/:id
func UpdateShipment(c *gin.Context) {
	artistID, ok := mustArtistID(c)
	if !ok {
		return
	}

	var draft shipments.Draft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if violations := shipments.Validate(draft, validate.Update); len(violations) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": violations})
		return
	}

	repo := repository.NewShipments(database.DB)
	item, err := repo.Get(c.Request.Context(), artistID, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Shipment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load shipment"})
		return
	}

	draft.Apply(&item)
	updated, err := repo.Update(c.Request.Context(), artistID, item.ID, item)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update shipment"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DELETE /shipments/:id
func DeleteShipment(c *gin.Context) {
	artistID, ok := mustArtistID(c)
	if !ok {
		return
	}

	repo := repository.NewShipments(database.DB)
	if err := repo.Delete(c.Request.Context(), artistID, c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Shipment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete shipment"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// PUT /shipments/:id/status
// Movement is forward only, preparing to shipped to delivered.
func TransitionShipment(c *gin.Context) {
	artistID, ok := mustArtistID(c)
	if !ok {
		return
	}

	var req TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	repo := repository.NewShipments(database.DB)
	item, err := repo.Get(c.Request.Context(), artistID, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Shipment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load shipment"})
		return
	}

	if err := shipments.Transition(&item, shipments.Status(req.Status)); err != nil {
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
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update shipment"})
		return
	}
	c.JSON(http.StatusOK, updated)
}
