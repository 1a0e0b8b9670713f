package bootstrap

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/ayushkamni/desi-premium/internal/cache"
	"github.com/ayushkamni/desi-premium/internal/config"
	"github.com/ayushkamni/desi-premium/internal/database"
	"github.com/ayushkamni/desi-premium/internal/events"
	"github.com/ayushkamni/desi-premium/internal/handlers"
	"github.com/ayushkamni/desi-premium/internal/logger"
	"github.com/ayushkamni/desi-premium/internal/repository"
	"github.com/ayushkamni/desi-premium/internal/services"
	"github.com/ayushkamni/desi-premium/internal/storage"
	"github.com/ayushkamni/desi-premium/internal/token"
)

type AppContext struct {
	Config  *config.Config
	Log     *zap.SugaredLogger
	Mongo   *mongo.Client
	Redis   *redis.Client
	Tokens  *token.Manager
	Handler *handlers.Handler
}

type CleanupFn func(context.Context)

// Init wires the whole service. Any error here is a refusal to start;
// nothing is served with a partial configuration.
func Init(configPath string) (*AppContext, CleanupFn, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	log, err := logger.New(cfg.App.Env == "development")
	if err != nil {
		return nil, nil, err
	}
	log.Infof("starting in %s environment", cfg.App.Env)

	tokens, err := token.NewManager(cfg.JWT.Secret, cfg.TokenTTL)
	if err != nil {
		return nil, nil, err
	}

	db, mongoClient, err := database.ConnectMongo(cfg.Mongo.URI, cfg.Mongo.Database, log)
	if err != nil {
		return nil, nil, err
	}

	// Redis is optional: without it the stats endpoint just skips caching.
	var rdb *redis.Client
	var statsCache services.Cache
	if cfg.Redis.Addr != "" {
		rdb, err = database.ConnectRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, log)
		if err != nil {
			return nil, nil, err
		}
		statsCache = cache.NewRedis(rdb)
	}

	store, err := storage.NewS3Store(context.Background(), cfg.Storage.Region, cfg.Storage.Bucket, cfg.Storage.Endpoint, cfg.Storage.BaseURL)
	if err != nil {
		return nil, nil, err
	}

	publisher := events.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, log)

	userRepo := repository.NewMongoUserRepo(db, cfg.Mongo.UsersCollection)
	mediaRepo := repository.NewMongoMediaRepo(db, cfg.Mongo.MediaCollection)

	authSvc := services.NewAuthService(userRepo, tokens, cfg.Security.PasswordHashCost, log)
	userSvc := services.NewUserService(userRepo, mediaRepo, statsCache, cfg.StatsTTL, cfg.Security.PasswordHashCost, publisher, log)
	catalogSvc := services.NewCatalogService(mediaRepo, store, cfg.StorageTimeout, cfg.Upload.MaxSizeBytes, publisher, log)

	h := handlers.NewHandler(authSvc, userSvc, catalogSvc, cfg.Upload.StageDir, cfg.Upload.MaxSizeBytes, log)

	app := &AppContext{
		Config:  cfg,
		Log:     log,
		Mongo:   mongoClient,
		Redis:   rdb,
		Tokens:  tokens,
		Handler: h,
	}

	cleanup := func(ctx context.Context) {
		_ = log.Sync()
		if err := publisher.Close(); err != nil {
			log.Errorf("kafka close: %v", err)
		}
		if rdb != nil {
			if err := rdb.Close(); err != nil {
				log.Errorf("redis close: %v", err)
			}
		}
		if err := mongoClient.Disconnect(ctx); err != nil {
			log.Errorf("mongo disconnect: %v", err)
		}
	}
	return app, cleanup, nil
}
