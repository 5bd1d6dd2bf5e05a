package main

import (
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	httpctx "github.com/dtroode/videoflix-server/internal/api/http/context"
	"github.com/dtroode/videoflix-server/internal/api/http/handler"
	"github.com/dtroode/videoflix-server/internal/api/http/router"
	httpserver "github.com/dtroode/videoflix-server/internal/api/http/server"
	"github.com/dtroode/videoflix-server/internal/config"
	"github.com/dtroode/videoflix-server/internal/logger"
	"github.com/dtroode/videoflix-server/internal/mailer"
	"github.com/dtroode/videoflix-server/internal/metrics"
	"github.com/dtroode/videoflix-server/internal/model"
	"github.com/dtroode/videoflix-server/internal/notification"
	"github.com/dtroode/videoflix-server/internal/password"
	"github.com/dtroode/videoflix-server/internal/queue"
	"github.com/dtroode/videoflix-server/internal/repository/memory"
	"github.com/dtroode/videoflix-server/internal/repository/postgres"
	redisrepo "github.com/dtroode/videoflix-server/internal/repository/redis"
	"github.com/dtroode/videoflix-server/internal/scheduler"
	"github.com/dtroode/videoflix-server/internal/server"
	"github.com/dtroode/videoflix-server/internal/service"
	storage "github.com/dtroode/videoflix-server/internal/storage/minio"
	"github.com/dtroode/videoflix-server/internal/token"
)

const shutdownTimeout = 10 * time.Second

type notificationQueue interface {
	notification.Queue
	Consume(handler queue.Handler) error
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the notification worker",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(ctx context.Context) error {
	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	logAppVersion()

	if cfg.UsesDefaultJWTSecret() {
		log.Warn("JWT_SECRET is not set, signing tokens with the development key")
	}

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		log.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	m := metrics.New()
	if err := m.RegisterPool(db.Pool); err != nil {
		log.Fatal("failed to register pool metrics", "error", err)
	}

	sched, err := scheduler.New(log)
	if err != nil {
		log.Fatal("failed to create scheduler", "error", err)
	}
	sched.Start()

	var (
		blacklist model.TokenBlacklist
		q         notificationQueue
		stopQueue = func() {}
	)

	if cfg.Redis.Addr != "" {
		rdb, err := redisrepo.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatal("failed to connect to redis", "error", err)
		}
		defer rdb.Close()

		blacklist = redisrepo.NewBlacklist(rdb)

		conn, err := queue.OpenConnection(ctx, rdb, "videoflix", log)
		if err != nil {
			log.Fatal("failed to open queue connection", "error", err)
		}
		rq, err := queue.NewRMQ(conn, cfg.Notify.QueueName, cfg.Notify.Prefetch, cfg.Notify.PollInterval, log)
		if err != nil {
			log.Fatal("failed to open notification queue", "error", err)
		}
		if err := sched.Every(cfg.Notify.CleanInterval, "queue-clean", rq.Clean); err != nil {
			log.Fatal("failed to schedule queue cleaner", "error", err)
		}
		q = rq
		stopQueue = rq.Stop
	} else {
		log.Warn("REDIS_ADDR is empty, using in-process blacklist and queue")
		blacklist = memory.NewBlacklist(cfg.JWT.BlacklistCleanupInterval)
		q = queue.NewLocal(sched, log)
	}

	smtp, err := mailer.NewSMTP(mailer.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		AuthType: cfg.SMTP.AuthType,
		From:     cfg.SMTP.From,
		SSL:      cfg.SMTP.SSL,
		Timeout:  cfg.SMTP.Timeout,
	})
	if err != nil {
		log.Fatal("failed to create mailer", "error", err)
	}

	worker := notification.NewWorker(
		notification.NewComposer(cfg.Activation.ActivateURL, cfg.Activation.ResetURL),
		smtp,
		q,
		sched,
		m,
		cfg.Notify.MaxRetries,
		cfg.Notify.RetryIntervals,
		log,
	)
	if err := q.Consume(worker.Handle); err != nil {
		log.Fatal("failed to start notification worker", "error", err)
	}

	tokenManager := token.NewJWT(cfg.JWT.Secret, cfg.JWT.AccessTTL, cfg.JWT.RefreshTTL)
	tokenService := service.NewTokenService(tokenManager, blacklist, log)

	authService := service.NewAuth(
		postgres.NewAccountRepository(db),
		postgres.NewActivationTokenRepository(db),
		token.NewActivationCodec(cfg.JWT.Secret, cfg.Activation.LinkMaxAge),
		password.NewBcrypt(cfg.Password.BcryptCost),
		notification.NewDispatcher(q, log),
		tokenService,
		cfg.Activation.Window,
		log,
	)

	minioClient, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
		Secure: cfg.Storage.UseSSL,
	})
	if err != nil {
		log.Fatal("failed to create minio client", "error", err)
	}
	storageClient, err := storage.NewClient(ctx, minioClient, cfg.Storage.Bucket)
	if err != nil {
		log.Fatal("failed to initialize storage client", "error", err)
	}
	videoService := service.NewVideo(postgres.NewVideoRepository(db), storageClient, cfg.Storage.ThumbnailURLTTL, log)

	r := router.New(
		authService,
		tokenService,
		videoService,
		tokenService,
		httpctx.NewManager(),
		m,
		router.Config{
			AllowedOrigins: cfg.HTTP.AllowedOrigins,
			Cookies: handler.CookieConfig{
				Domain:   cfg.Cookie.Domain,
				SameSite: cfg.Cookie.SameSite,
				Secure:   cfg.Cookie.Secure,
			},
			RequestTimeout: cfg.HTTP.RequestTimeout,
		},
		log,
	)
	srv := httpserver.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port))
	sl := server.NewSecurityLayer(cfg.HTTP.EnableHTTPS, cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("Starting server on", "address", srv.Address())
		if err := srv.Start(sl); err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("received interruption signal, shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Stop(shutdownCtx); err != nil {
			log.Error("error during server shutdown", "error", err, "address", srv.Address())
		}
		stopQueue()
		if err := sched.Stop(); err != nil {
			log.Error("error during scheduler shutdown", "error", err)
		}
		return nil
	})

	err = g.Wait()
	log.Info("shutdown complete")

	return err
}
