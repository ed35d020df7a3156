package main

import (
	"database/sql"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/velocitywheels/wheel-shop-backend/internal/basket"
	"github.com/velocitywheels/wheel-shop-backend/internal/brand"
	"github.com/velocitywheels/wheel-shop-backend/internal/config"
	"github.com/velocitywheels/wheel-shop-backend/internal/contact"
	"github.com/velocitywheels/wheel-shop-backend/internal/fitment"
	"github.com/velocitywheels/wheel-shop-backend/internal/gallery"
	"github.com/velocitywheels/wheel-shop-backend/internal/seed"
	"github.com/velocitywheels/wheel-shop-backend/internal/testimonial"
	"github.com/velocitywheels/wheel-shop-backend/internal/wheel"
)

// main wires repositories, services and handlers and starts the HTTP server.
// With DATABASE_URL set the catalog lives in Postgres; otherwise the server
// runs on the seeded in-memory collections.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	app := fiber.New()
	setupCORS(app)
	app.Use(logger.New())

	var (
		brandRepo       brand.Repository
		wheelRepo       wheel.Repository
		fitmentRepo     fitment.Repository
		basketRepo      basket.Repository
		testimonialRepo testimonial.Repository
		galleryRepo     gallery.Repository
	)

	if cfg.DatabaseURL != "" {
		db := mustOpenDB(cfg.DatabaseURL)
		defer db.Close()

		brandRepo = brand.NewPostgresRepository(db)
		wheelRepo = wheel.NewPostgresRepository(db)
		fitmentRepo = fitment.NewPostgresRepository(db)
		basketRepo = basket.NewPostgresRepository(db)
		testimonialRepo = testimonial.NewPostgresRepository(db)
		galleryRepo = gallery.NewPostgresRepository(db)
	} else {
		data := seed.Load()
		brandRepo = brand.NewInMemoryRepository(data.Brands)
		wheelRepo = wheel.NewInMemoryRepository(data.Wheels)
		fitmentRepo = fitment.NewInMemoryRepository(data.Fitments)
		basketRepo = basket.NewInMemoryRepository(cfg.BasketSnapshotPath)
		testimonialRepo = testimonial.NewInMemoryRepository(data.Testimonials)
		galleryRepo = gallery.NewInMemoryRepository(data.Gallery)
	}

	// build the wheel service first so the fitment handler can classify
	// compatibility for a wheel id
	wheelService := wheel.NewService(wheelRepo)

	brand.NewHandler(brand.NewService(brandRepo)).RegisterPublicRoutes(app)
	wheel.NewHandler(wheelService).RegisterPublicRoutes(app)
	fitment.NewHandler(fitment.NewService(fitmentRepo), wheelService).RegisterPublicRoutes(app)
	basket.NewHandler(basket.NewService(basketRepo)).RegisterPublicRoutes(app)
	testimonial.NewHandler(testimonial.NewService(testimonialRepo)).RegisterPublicRoutes(app)
	gallery.NewHandler(gallery.NewService(galleryRepo)).RegisterPublicRoutes(app)
	contact.NewHandler().RegisterPublicRoutes(app)

	log.Printf("starting server on %s", cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
}

func mustOpenDB(url string) *sql.DB {
	db, err := sql.Open("pgx", url)
	if err != nil {
		panic(err)
	}
	if err := db.Ping(); err != nil {
		panic(err)
	}
	return db
}
