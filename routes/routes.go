package routes

import (
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	supa "github.com/supabase-community/supabase-go"

	"github.com/lumistudio/backend-studio/config"
	"github.com/lumistudio/backend-studio/handlers"
	"github.com/lumistudio/backend-studio/middleware"
	"github.com/lumistudio/backend-studio/services"
	"github.com/lumistudio/backend-studio/store"
)

func SetupRoutes(router *gin.Engine, supabaseClient *supa.Client, cfg *config.Config, notifier services.Notifier) {
	records := store.NewRecords(supabaseClient)
	objects := store.NewObjects(supabaseClient)

	bookingService := services.NewBookingService(records, objects, notifier)
	galleryService := services.NewGalleryService(records, objects)

	authHandler := handlers.NewAuthHandler(cfg)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	galleryHandler := handlers.NewGalleryHandler(galleryService)
	exportHandler := handlers.NewExportHandler(bookingService)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"success": true,
			"message": "Server is running",
		})
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Landing page
	router.StaticFile("/", filepath.Join(cfg.PublicDir, "index.html"))

	// Public routes
	router.POST("/book", bookingHandler.Submit)
	router.GET("/gallery", galleryHandler.List)
	router.POST("/admin/login", authHandler.Login)

	// Admin routes; the guard is a pass-through until admin credentials
	// are configured.
	admin := router.Group("")
	admin.Use(middleware.AdminAuth(cfg))
	{
		admin.GET("/bookings", bookingHandler.List)
		admin.POST("/gallery", galleryHandler.Upload)
		admin.DELETE("/gallery/:id", galleryHandler.Delete)
		admin.GET("/admin/bookings/export", exportHandler.Bookings)
	}
}
