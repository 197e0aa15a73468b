package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"auctionhub/internal/config"
	"auctionhub/internal/database/db_client"
	"auctionhub/internal/http/http_server"
	"auctionhub/internal/redis/auctioncache"
	"auctionhub/internal/redis/redis_client"
	"auctionhub/internal/services/auction"
	"auctionhub/internal/services/identity"
	"auctionhub/internal/store/auctionstore"
	"auctionhub/internal/store/userstore"
	"auctionhub/internal/upload"

	"go.uber.org/zap"
)

var (
	Log, _ = zap.NewDevelopment()
)

//	@title		Auction Hub API
//	@version	1.0

func main() {
	defer Log.Sync()
	zap.ReplaceGlobals(Log)

	// 1. Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		Log.Fatal("Failed to load configuration", zap.Error(err))
	}
	Log.Debug("Configuration loaded successfully", zap.Any("config", cfg))

	// 2. Context with signal handling
	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGINT, syscall.SIGTERM,
	)
	defer stop()

	// 3. MongoDB
	mongoClient, db, err := db_client.Open(ctx, cfg.MongoURI, cfg.MongoDb)
	if err != nil {
		Log.Fatal("mongo_open", zap.Error(err))
	}
	defer mongoClient.Disconnect(context.Background())

	// 4. Redis (auction read cache)
	redisClient, err := redis_client.NewRedisClient(cfg.RedisAuctionsHost, int(cfg.RedisAuctionsPort))
	if err != nil {
		Log.Fatal("Failed to create Redis client", zap.Error(err))
	}
	defer redisClient.Close()

	// 5. Stores and services
	auctions := auctionstore.New(db)
	users := userstore.New(db)
	cache := auctioncache.New(redisClient, time.Duration(cfg.AuctionCacheTTLSeconds)*time.Second)

	auctionService := auction.NewAuctionService(auctions, users, cache)
	identityService := identity.NewIdentityService(users)

	// 6. Image uploads
	uploads, err := upload.NewSaver(cfg.UploadDir)
	if err != nil {
		Log.Fatal("upload_dir", zap.Error(err))
	}

	// 7. HTTP server
	httpServer := http_server.NewHttpServer(cfg.HttpServerPort, auctionService, identityService, uploads)

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			Log.Fatal("Failed to start HTTP server", zap.Error(err))
		}
	case <-ctx.Done():
		if err := httpServer.Dispose(); err != nil {
			Log.Error("http_shutdown", zap.Error(err))
		}
	}
}
