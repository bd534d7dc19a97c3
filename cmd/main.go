package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/redis/go-redis/v9"

	grpcctx "github.com/oleksandr-romashko/goit-pythonweb-hw-12/internal/api/grpc/context"
	"github.com/oleksandr-romashko/goit-pythonweb-hw-12/internal/api/grpc/router"
	grpcServer "github.com/oleksandr-romashko/goit-pythonweb-hw-12/internal/api/grpc/server"
	"github.com/oleksandr-romashko/goit-pythonweb-hw-12/internal/avatar"
	"github.com/oleksandr-romashko/goit-pythonweb-hw-12/internal/cache"
	"github.com/oleksandr-romashko/goit-pythonweb-hw-12/internal/config"
	"github.com/oleksandr-romashko/goit-pythonweb-hw-12/internal/logger"
	"github.com/oleksandr-romashko/goit-pythonweb-hw-12/internal/model"
	"github.com/oleksandr-romashko/goit-pythonweb-hw-12/internal/password"
	"github.com/oleksandr-romashko/goit-pythonweb-hw-12/internal/queue"
	"github.com/oleksandr-romashko/goit-pythonweb-hw-12/internal/repository/postgres"
	"github.com/oleksandr-romashko/goit-pythonweb-hw-12/internal/server"
	"github.com/oleksandr-romashko/goit-pythonweb-hw-12/internal/service"
	storage "github.com/oleksandr-romashko/goit-pythonweb-hw-12/internal/storage/minio"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel, cfg.LogFormat)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN, postgres.PoolOptions{
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
	})
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userOpts := []service.UserOption{}
	contactOpts := []service.ContactOption{
		service.WithBirthdayWindow(cfg.Contacts.UpcomingBirthdaysDays, cfg.Contacts.MoveFeb29ToFeb28),
	}
	if redisClient := connectCache(ctx, cfg.Cache, logger); redisClient != nil {
		defer redisClient.Close()
		countCache := cache.NewContactsCountCache(redisClient, seconds(cfg.Cache.ContactsCountTTLSeconds), logger)
		userOpts = append(userOpts,
			service.WithUserCache(cache.NewUserCache(redisClient, seconds(cfg.Cache.UserTTLSeconds), logger)),
			service.WithContactsCountCache(countCache),
		)
		contactOpts = append(contactOpts,
			service.WithContactCache(cache.NewContactCache(redisClient, seconds(cfg.Cache.ContactTTLSeconds), logger)),
			service.WithOwnerCountCache(countCache),
		)
	}

	var avatarStorage model.AvatarStorage
	if storageClient := connectStorage(ctx, cfg.Storage, logger); storageClient != nil {
		avatarStorage = storageClient
	}

	var publisher model.EmailPublisher
	if p := connectQueue(cfg.Queue, logger); p != nil {
		defer p.Close()
		publisher = p
	}

	resolver := avatar.NewGravatar(cfg.Users.AvatarSize)
	userService := service.NewUser(
		postgres.NewUserRepository(db),
		password.NewBcrypt(cfg.Users.BcryptCost),
		resolver,
		logger,
		userOpts...,
	)
	contactService := service.NewContact(postgres.NewContactRepository(db), logger, contactOpts...)

	authService := service.NewAuth(service.AuthConfig{
		Algorithm:         cfg.Auth.Algorithm,
		Issuer:            cfg.Auth.Issuer,
		Access:            service.TokenSettings{Secret: cfg.Auth.AccessSecret, TTL: cfg.Auth.AccessTTL()},
		Refresh:           service.TokenSettings{Secret: cfg.Auth.AccessSecret, TTL: cfg.Auth.RefreshTTL()},
		EmailConfirmation: service.TokenSettings{Secret: cfg.Mail.JWTSecret, TTL: cfg.Mail.ConfirmationTTL()},
	}, logger)
	tokenService := service.NewTokenService(authService, userService, publisher, logger)

	seedSuperadmin(ctx, userService, cfg.Superadmin, logger)

	r := router.New(
		userService,
		contactService,
		tokenService,
		resolver,
		avatarStorage,
		grpcctx.NewManager(),
		cfg.EffectiveReservedUsernames(),
		logger,
	)
	s := grpcServer.NewGRPCServer(r.Register(), fmt.Sprintf(":%s", cfg.GRPC.Port))
	sl := server.NewSecurityLayer(cfg.GRPC)

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
			stop()
		}
	}(s)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := s.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", s.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}

// connectCache returns nil when caching is disabled or redis is unreachable.
func connectCache(ctx context.Context, cfg config.Cache, logger *logger.Logger) *redis.Client {
	if !cfg.Enabled {
		logger.Info("cache disabled by configuration")
		return nil
	}
	client, err := cache.NewRedisClient(ctx, cache.RedisOptions{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err != nil {
		logger.Warn("cache unavailable, continuing without it", "error", err.Error())
		return nil
	}
	return client
}

// connectStorage returns nil when avatar storage is disabled or cannot be initialized.
func connectStorage(ctx context.Context, cfg config.Storage, logger *logger.Logger) *storage.Client {
	if !cfg.Enabled {
		logger.Info("avatar storage disabled by configuration")
		return nil
	}
	minioClient, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		logger.Warn("failed to create minio client, avatar uploads disabled", "error", err.Error())
		return nil
	}
	client, err := storage.NewClient(ctx, minioClient, cfg.Bucket, cfg.PublicURL, logger)
	if err != nil {
		logger.Warn("failed to initialize avatar storage, avatar uploads disabled", "error", err.Error())
		return nil
	}
	return client
}

// connectQueue returns nil when email dispatch is disabled or the broker is unreachable.
func connectQueue(cfg config.Queue, logger *logger.Logger) *queue.Publisher {
	if !cfg.Enabled {
		logger.Info("email dispatch disabled by configuration")
		return nil
	}
	p, err := queue.NewPublisher(cfg.URL, cfg.EmailQueue, logger)
	if err != nil {
		logger.Warn("message broker unavailable, confirmation emails will not be sent", "error", err.Error())
		return nil
	}
	return p
}

func seedSuperadmin(ctx context.Context, users *service.User, cfg config.Superadmin, logger *logger.Logger) {
	admin, err := users.CreateSuperuser(ctx, cfg.Username, cfg.Email, cfg.Password)
	switch {
	case err == nil:
		logger.Info("superadmin created", "user", admin)
	case service.SuperuserExists(err):
		logger.Info("superadmin already exists", "username", cfg.Username)
	case errors.Is(err, model.ErrUserConflict):
		logger.Fatal("superadmin configuration conflicts with an existing account",
			"username", cfg.Username,
			"error", err)
	default:
		logger.Fatal("failed to create superadmin", "error", err)
	}
}
