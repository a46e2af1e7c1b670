package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/bjrfx/masakali-menu/internal/auth"
	"github.com/bjrfx/masakali-menu/internal/browse"
	"github.com/bjrfx/masakali-menu/internal/catalog"
	"github.com/bjrfx/masakali-menu/internal/db"
	"github.com/bjrfx/masakali-menu/internal/metrics"
	"github.com/bjrfx/masakali-menu/internal/middleware"
	"github.com/bjrfx/masakali-menu/internal/storage"
	"github.com/bjrfx/masakali-menu/internal/viewport"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"ADMIN_PASSWORD_HASH",
	}
	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// ───────────────────────── CATALOG SOURCE ─────────────────────────
	source := buildSource()

	// ───────────────────────── METRICS ─────────────────────────
	registry := metrics.NewRegistry()

	// ───────────────────────── CATALOG ─────────────────────────
	catalogService := catalog.NewService(source, registry)

	loadCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// The first load is the page's initial render: a failure here is
	// terminal, never a partial catalog.
	if _, err := catalogService.Reload(loadCtx); err != nil {
		log.Fatal("❌ Initial catalog load failed: ", err)
	}

	// ───────────────────────── SERVICES ─────────────────────────
	authService := auth.NewService(os.Getenv("ADMIN_PASSWORD_HASH"))
	browseService := browse.NewService(catalogService, registry)

	// ───────────────────────── HANDLERS ─────────────────────────
	authHandler := auth.NewHandler(authService)
	browseHandler := browse.NewHandler(browseService)
	viewportHandler := viewport.NewHandler()
	adminCatalogHandler := catalog.NewAdminHandler(catalogService)

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── AUTH ─────────────────────────
	r.POST("/auth/login", authHandler.Login)

	// ───────────────────────── MENU (PUBLIC) ─────────────────────────
	menu := r.Group("/menu")
	{
		menu.GET("", browseHandler.Menu)
		menu.GET("/categories", browseHandler.Categories)
		menu.GET("/options", browseHandler.Options)
		menu.POST("/viewport", viewportHandler.Compute)
	}

	// ───────────────────────── ADMIN ─────────────────────────
	admin := r.Group("/admin")
	admin.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole("ADMIN"),
	)
	{
		admin.POST("/catalog/reload", adminCatalogHandler.Reload)
		admin.POST("/catalog/reload/schedule", adminCatalogHandler.ScheduleReload)
	}

	// ───────────────────────── OBSERVABILITY ─────────────────────────
	r.GET("/metrics", gin.WrapH(registry.Handler()))
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── START ─────────────────────────
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	log.Printf("🚀 API running at http://localhost:%s", port)
	r.Run(":" + port)
}

// buildSource picks the catalog source from CATALOG_SOURCE
// (file|http|r2|postgres, default file).
func buildSource() catalog.Source {
	switch os.Getenv("CATALOG_SOURCE") {
	case "", "file":
		path := os.Getenv("CATALOG_FILE")
		if path == "" {
			path = "menu-data.json"
		}
		return catalog.FileSource{Path: path}

	case "http":
		url := os.Getenv("CATALOG_URL")
		if url == "" {
			log.Fatal("❌ Missing env var: CATALOG_URL")
		}
		return catalog.HTTPSource{URL: url}

	case "r2":
		for _, k := range []string{"R2_ENDPOINT", "R2_ACCESS_KEY", "R2_SECRET_KEY", "R2_BUCKET_NAME", "CATALOG_OBJECT_KEY"} {
			if os.Getenv(k) == "" {
				log.Fatalf("❌ Missing env var: %s", k)
			}
		}
		r2Client, err := storage.NewR2Client(context.Background())
		if err != nil {
			log.Fatal("❌ R2 init failed:", err)
		}
		return catalog.R2Source{Store: r2Client, Key: os.Getenv("CATALOG_OBJECT_KEY")}

	case "postgres":
		return catalog.NewPostgresSource(db.ConnectPostgres())

	default:
		log.Fatalf("❌ Unknown CATALOG_SOURCE: %s", os.Getenv("CATALOG_SOURCE"))
		return nil
	}
}
