package contacts

import (
	"errors"
	"net/http"

	"studio-app/database"
	"studio-app/internal/domain/contacts"
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

// GET /contacts
func ListContacts(c *gin.Context) {
	artistID, ok := mustArtistID(c)
	if !ok {
		return
	}

	repo := repository.NewContacts(database.DB)
	items, err := repo.List(c.Request.Context(), artistID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load contacts"})
		return
	}

	items = query.Filter(items, query.Spec{
		Query:  c.Query("q"),
		Status: c.Query("status"),
	})
	c.JSON(http.StatusOK, items)
}

// GET /contacts/:id
func GetContact(c *gin.Context) {
	artistID, ok := mustArtistID(c)
	if !ok {
		return
	}

	repo := repository.NewContacts(database.DB)
	item, err := repo.Get(c.Request.Context(), artistID, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Contact not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load contact"})
		return
	}
	c.JSON(http.StatusOK, item)
}

// POST /contacts
func CreateContact(c *gin.Context) {
	artistID, ok := mustArtistID(c)
	if !ok {
		return
	}

	var draft contacts.Draft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if violations := contacts.Validate(draft, validate.Create); len(violations) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": violations})
		return
	}

	repo := repository.NewContacts(database.DB)
	created, err := repo.Create(c.Request.Context(), artistID, contacts.New(artistID, draft))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create contact"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// PUT /contacts/:id
// Status is a plain attribute here, changed through the body like any
// other field.
func UpdateContact(c *gin.Context) {
	artistID, ok := mustArtistID(c)
	if !ok {
		return
	}

	var draft contacts.Draft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if violations := contacts.Validate(draft, validate.Update); len(violations) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": violations})
		return
	}

	repo := repository.NewContacts(database.DB)
	item, err := repo.Get(c.Request.Context(), artistID, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Contact not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load contact"})
		return
	}

	draft.Apply(&item)
	updated, err := repo.Update(c.Request.Context(), artistID, item.ID, item)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update contact"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DELETE /contacts/:id
func DeleteContact(c *gin.Context) {
	artistID, ok := mustArtistID(c)
	if !ok {
		return
	}

	repo := repository.NewContacts(database.DB)
	if err := repo.Delete(c.Request.Context(), artistID, c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Contact not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete contact"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
