package main

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mghazyfawazh/outlines/internal/catalog"
	"github.com/mghazyfawazh/outlines/internal/config"
	"github.com/mghazyfawazh/outlines/internal/handlers"
	"github.com/mghazyfawazh/outlines/internal/repo"
)

// @title                       Course outlines API
// @version                     1.0
// @description                 Browse the course-outline catalog, lay sections out on a week grid and keep saved outlines.
// @BasePath                    /
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        x-api-key
func main() {
	config.LoadEnv()
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	client := connectMongo(cfg.MongoURI)
	defer client.Disconnect(context.Background())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	store, err := repo.NewMongoRepo(ctx, client.Database(cfg.DBName).Collection("saved_outlines"))
	cancel()
	if err != nil {
		log.Fatal(err)
	}

	cat, err := catalog.New(cfg.CatalogURL, cfg.HTTPTimeout, cfg.CacheTTL)
	if err != nil {
		log.Fatal(err)
	}

	h := handlers.NewHandler(cat, store, cfg.DuplicateDays)
	r := handlers.NewRouter(h, cfg.APIKey)

	log.Println("Server running on port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

func connectMongo(uri string) *mongo.Client {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatal(err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatal(err)
	}
	return client
}
