package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/tatyana-ilieva/lev-holdings/config"
	"github.com/tatyana-ilieva/lev-holdings/internal/clock"
	"github.com/tatyana-ilieva/lev-holdings/internal/database"
	"github.com/tatyana-ilieva/lev-holdings/internal/handlers"
	"github.com/tatyana-ilieva/lev-holdings/internal/metrics"
	"github.com/tatyana-ilieva/lev-holdings/internal/minter"
	"github.com/tatyana-ilieva/lev-holdings/internal/models"
	"github.com/tatyana-ilieva/lev-holdings/internal/provider"
	"github.com/tatyana-ilieva/lev-holdings/internal/provider/simulated"
	"github.com/tatyana-ilieva/lev-holdings/internal/provider/sumsub"
	"github.com/tatyana-ilieva/lev-holdings/internal/publisher"
	"github.com/tatyana-ilieva/lev-holdings/internal/repository/memory"
	"github.com/tatyana-ilieva/lev-holdings/internal/repository/posgrest"
	"github.com/tatyana-ilieva/lev-holdings/internal/repository/redisstore"
	"github.com/tatyana-ilieva/lev-holdings/internal/service"
	"github.com/tatyana-ilieva/lev-holdings/internal/subscriber"
)

const shutdownTimeout = 10 * time.Second

// eventPublisher is what both the Kafka publisher and its no-op stand-in provide.
type eventPublisher interface {
	service.Publisher
	Close() error
}

type App struct {
	config *config.Config
	Router *gin.Engine

	publisher     eventPublisher
	consumer      *subscriber.KafkaConsumer
	statusService *service.StatusService
	closers       []io.Closer
}

func (a *App) Initialize(ctx context.Context, cfg *config.Config) error {
	a.config = cfg
	clk := clock.New()
	rnd := service.DefaultRandom()

	store, err := a.initStore(ctx)
	if err != nil {
		return err
	}

	a.publisher = a.initPublisher()

	simulatedProvider := simulated.New(clk, cfg.Verification.SimulatedReviewAfter, cfg.Verification.ExternalUserPrefix)
	var primary provider.Provider = simulatedProvider
	if cfg.APP.Provider == config.ProviderSumsub {
		primary = sumsub.New(sumsub.Config{
			BaseURL:            cfg.Sumsub.BaseURL,
			AppToken:           cfg.Sumsub.AppToken,
			SecretKey:          cfg.Sumsub.SecretKey,
			WebhookSecret:      cfg.Sumsub.WebhookSecret,
			LevelName:          cfg.Sumsub.LevelName,
			ExternalUserPrefix: cfg.Verification.ExternalUserPrefix,
			Timeout:            cfg.Sumsub.Timeout,
		}, clk)
	}

	var credentialMinter service.Minter
	if cfg.Solana.MinterEnabled() {
		solanaMinter, err := minter.NewSolanaMinter(cfg.Solana.RPCURL, cfg.Solana.PrivateKey, cfg.Solana.Network)
		if err != nil {
			logrus.Errorf("Error configuring solana minter, credentials will use placeholder mints: %s", err.Error())
		} else {
			credentialMinter = solanaMinter
		}
	}

	a.statusService = service.NewStatusService(store, a.publisher, clk, rnd, service.Timing{
		ViewCompleteAfter: cfg.Verification.ViewCompleteAfter,
		AutoCompleteAfter: cfg.Verification.AutoCompleteAfter,
	})
	credentialService := service.NewCredentialService(
		credentialMinter,
		a.publisher,
		nil,
		clk,
		rnd,
		cfg.Credential.MintDelay,
		cfg.Credential.ExternalURL,
		cfg.Solana.Network,
	)
	webhookService := service.NewWebhookService(a.statusService, credentialService, clk, rnd, cfg.Verification.ExternalUserPrefix)
	tokenService := service.NewTokenService(primary, simulatedProvider)
	reconcileService := service.NewReconcileService(store, a.statusService, primary)
	verifyService := service.NewVerifyService(clk, rnd, cfg.Verification.DemoVerifyDelay, cfg.Verification.DemoCheckDelay)

	webhookHandler := handlers.NewWebhookHandler(webhookService, primary)

	metrics.RegisterMetrics()
	if cfg.APP.IsLocal() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	a.Router = gin.New()
	a.Router.Use(gin.Recovery(), handlers.RequestLogger(), handlers.CORS())
	a.RegisterRoutes(Handlers{
		Status:     handlers.NewStatusHandler(a.statusService),
		Webhook:    webhookHandler,
		Credential: handlers.NewCredentialHandler(credentialService),
		Token:      handlers.NewTokenHandler(tokenService),
		Reconcile:  handlers.NewReconcileHandler(reconcileService),
		Verify:     handlers.NewVerifyHandler(verifyService, service.ValidWallet),
	})

	if cfg.Kafka.Enabled {
		a.consumer = subscriber.NewMultiTopicConsumer(
			cfg.Kafka.BrokerList(),
			cfg.Kafka.SubscriberTopicList(),
			cfg.Kafka.ConsumerGroup,
			a.publisher,
			cfg.Kafka.GetRetryConfig(),
		)
		a.consumer.Listen(ctx, webhookHandler.HandleEvents)
	}

	if lister, ok := store.(service.PendingLister); ok && cfg.Verification.ResumeOnStart {
		resumed, err := a.statusService.ResumePending(ctx, lister)
		if err != nil {
			logrus.Errorf("Error resuming pending verifications: %s", err.Error())
		} else if resumed > 0 {
			logrus.Infof("Resumed %d pending verifications", resumed)
		}
	}

	return nil
}

func (a *App) initStore(ctx context.Context) (service.StatusStore, error) {
	switch a.config.APP.StoreDriver {
	case config.StorePostgres:
		db, err := a.config.DB.GormConnect()
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := db.AutoMigrate(&models.VerificationRecord{}); err != nil {
			return nil, fmt.Errorf("failed to auto migrate: %w", err)
		}
		if a.config.APP.IsLocal() {
			if err := database.SeedVerifications(db); err != nil {
				logrus.Warnf("Failed to seed verification records: %s", err.Error())
			}
		}
		if sqlDB, err := db.DB(); err == nil {
			a.closers = append(a.closers, sqlDB)
		}
		return posgrest.NewStatusRepository(db), nil

	case config.StoreRedis:
		client, err := a.config.Redis.Connect(ctx)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, client)
		return redisstore.New(client, a.config.Redis.KeyPrefix), nil

	default:
		logrus.Warn("Using in-memory verification store, records are lost on restart")
		return memory.New(), nil
	}
}

func (a *App) initPublisher() eventPublisher {
	if !a.config.Kafka.Enabled {
		return publisher.Noop{}
	}
	return publisher.NewKafkaPublisher(
		a.config.Kafka.BrokerList(),
		a.config.Kafka.PublishTopicList(),
		a.config.Kafka.GetRetryConfig(),
	)
}

// Run serves HTTP until ctx is cancelled, then drains in-flight requests and
// closes the broker and store connections.
func (a *App) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", a.config.APP.PORT),
		Handler: a.Router,
	}

	serveErr := make(chan error, 1)
	go func() {
		logrus.Infof("Verification service listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err, ok := <-serveErr:
		if ok {
			a.close()
			return fmt.Errorf("http server: %w", err)
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	err := srv.Shutdown(shutdownCtx)
	a.close()
	logrus.Info("Verification service stopped")
	return err
}

func (a *App) close() {
	if a.consumer != nil {
		if err := a.consumer.Close(); err != nil {
			logrus.Errorf("Error closing consumer: %s", err.Error())
		}
	}
	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			logrus.Errorf("Error closing publisher: %s", err.Error())
		}
	}
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			logrus.Errorf("Error closing connection: %s", err.Error())
		}
	}
}
