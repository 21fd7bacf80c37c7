package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uprisingink/studio-api/internal/cache"
	"github.com/uprisingink/studio-api/internal/config"
	dbpkg "github.com/uprisingink/studio-api/internal/db"
	"github.com/uprisingink/studio-api/internal/mailer"
	"github.com/uprisingink/studio-api/internal/payments"
	"github.com/uprisingink/studio-api/internal/realtime"
	"github.com/uprisingink/studio-api/internal/routes"
	"github.com/uprisingink/studio-api/internal/sitecontent"
	"github.com/uprisingink/studio-api/internal/storage"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	rdb, err := cache.New(cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		log.Fatalf("failed to connect redis: %v", err)
	}

	content := sitecontent.New(rdb, cfg.AssetVersion, cfg.AssetURLs)
	if err := content.Prime(context.Background()); err != nil {
		log.Fatalf("failed to prime site content: %v", err)
	}

	var checkout *payments.DepositCheckout
	if cfg.MercadoPagoAccessToken != "" {
		checkout, err = payments.NewDepositCheckout(cfg.MercadoPagoAccessToken, cfg.StudioName)
		if err != nil {
			log.Fatalf("failed to init payments: %v", err)
		}
	} else {
		log.Println("MERCADOPAGO_ACCESS_TOKEN not set, deposit checkout disabled")
	}

	hub := realtime.NewHub()

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, routes.Deps{
		DB:       db,
		Config:   cfg,
		Hub:      hub,
		Content:  content,
		Store:    storage.NewS3Store(cfg),
		Mailer:   mailer.New(cfg),
		Checkout: checkout,
	})

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
