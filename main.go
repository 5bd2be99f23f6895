package main

import (
	"time"

	"studio-app/config"
	"studio-app/database"
	routes "studio-app/internal/app/http"
	"studio-app/internal/app/http/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	config.LoadEnv()
	database.InitDB(logger)

	r := gin.New()
	r.Use(middleware.RequestLogger(logger), middleware.Recovery(logger))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r)

	if err := r.Run(":" + config.PORT); err != nil {
		logger.WithError(err).Fatal("server exited")
	}
}
