package routes

import (
	artworksapi "studio-app/internal/api/artworks"
	authapi "studio-app/internal/api/auth"
	commissionsapi "studio-app/internal/api/commissions"
	contactsapi "studio-app/internal/api/contacts"
	invoicesapi "studio-app/internal/api/invoices"
	shipmentsapi "studio-app/internal/api/shipments"
	visitsapi "studio-app/internal/api/visits"
	"studio-app/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.POST("/register", authapi.Register)
	public.POST("/login", authapi.Login)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware())
	auth.POST("/change-password", authapi.ChangePassword)

	auth.GET("/artworks", artworksapi.ListArtworks)
	auth.GET("/artworks/:id", artworksapi.GetArtwork)
	auth.POST("/artworks", artworksapi.CreateArtwork)
	auth.PUT("/artworks/:id", artworksapi.UpdateArtwork)
	auth.DELETE("/artworks/:id", artworksapi.DeleteArtwork)
	auth.PUT("/artworks/:id/status", artworksapi.TransitionArtwork)
	auth.POST("/artworks/:id/sale", artworksapi.RecordArtworkSale)

	auth.GET("/commissions", commissionsapi.ListCommissions)
	auth.GET("/commissions/:id", commissionsapi.GetCommission)
	auth.POST("/commissions", commissionsapi.CreateCommission)
	auth.PUT("/commissions/:id", commissionsapi.UpdateCommission)
	auth.DELETE("/commissions/:id", commissionsapi.DeleteCommission)
	auth.PUT("/commissions/:id/status", commissionsapi.TransitionCommission)

	auth.GET("/invoices", invoicesapi.ListInvoices)
	auth.GET("/invoices/:id", invoicesapi.GetInvoice)
	auth.POST("/invoices", invoicesapi.CreateInvoice)
	auth.PUT("/invoices/:id", invoicesapi.UpdateInvoice)
	auth.DELETE("/invoices/:id", invoicesapi.DeleteInvoice)
	auth.PUT("/invoices/:id/status", invoicesapi.TransitionInvoice)

	auth.GET("/contacts", contactsapi.ListContacts)
	auth.GET("/contacts/:id", contactsapi.GetContact)
	auth.POST("/contacts", contactsapi.CreateContact)
	auth.PUT("/contacts/:id", contactsapi.UpdateContact)
	auth.DELETE("/contacts/:id", contactsapi.DeleteContact)

	auth.GET("/studio-visits", visitsapi.ListVisits)
	auth.GET("/studio-visits/:id", visitsapi.GetVisit)
	auth.POST("/studio-visits", visitsapi.CreateVisit)
	auth.PUT("/studio-visits/:id", visitsapi.UpdateVisit)
	auth.DELETE("/studio-visits/:id", visitsapi.DeleteVisit)
	auth.PUT("/studio-visits/:id/status", visitsapi.TransitionVisit)

	auth.GET("/shipments", shipmentsapi.ListShipments)
	auth.GET("/shipments/:id", shipmentsapi.GetShipment)
	auth.POST("/shipments", shipmentsapi.CreateShipment)
	auth.PUT("/shipments/:id", shipmentsapi.UpdateShipment)
	auth.DELETE("/shipments/:id", shipmentsapi.DeleteShipment)
	auth.PUT("/shipments/:id/status", shipmentsapi.TransitionShipment)
}
