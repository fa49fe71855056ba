package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/barbieri-app/booking-dashboard/internal/config"
	dbpkg "github.com/barbieri-app/booking-dashboard/internal/db"
	"github.com/barbieri-app/booking-dashboard/internal/middleware"
	"github.com/barbieri-app/booking-dashboard/internal/realtime"
	"github.com/barbieri-app/booking-dashboard/internal/routes"
	"github.com/barbieri-app/booking-dashboard/internal/staff"
	"github.com/barbieri-app/booking-dashboard/internal/timezone"
	"github.com/barbieri-app/booking-dashboard/internal/viewcache"
)

func main() {

	cfg := config.Load()
	timezone.Init(cfg.ShopTimezone)

	db := dbpkg.NewDB(cfg)

	registry := staff.NewRegistry(db)
	if err := registry.Reload(context.Background()); err != nil {
		log.Fatalf("failed to load staff registry: %v", err)
	}

	cache := viewcache.New()

	feed, err := realtime.NewFeed(cfg.RedisURL)
	if err != nil {
		// the dashboard works without live updates, so a dead redis only
		// costs the change feed
		log.Printf("change feed disabled: %v", err)
	}
	defer feed.Close()

	// Another instance moving an appointment must drop our cached day view.
	stopAppointments := feed.Subscribe(context.Background(), realtime.TableAppointments, func(ev realtime.Event) {
		invalidateFromEvent(cache, ev)
	})
	defer stopAppointments()

	// Any rule table change can reshape any future day.
	for _, table := range realtime.RuleTables {
		stop := feed.Subscribe(context.Background(), table, func(realtime.Event) {
			cache.Purge()
		})
		defer stop()
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, cfg, routes.Deps{
		DB:       db,
		Registry: registry,
		Cache:    cache,
		Feed:     feed,
	})

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

func invalidateFromEvent(cache *viewcache.DayViews, ev realtime.Event) {
	barberID, err := uuid.Parse(ev.BarberID)
	if err != nil || ev.Date == "" {
		cache.Purge()
		return
	}
	cache.Invalidate(barberID, ev.Date)
}
