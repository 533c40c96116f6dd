package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MikeRez0/orderdesk/internal/adapter/auth"
	"github.com/MikeRez0/orderdesk/internal/adapter/client/cnpj"
	"github.com/MikeRez0/orderdesk/internal/adapter/config"
	"github.com/MikeRez0/orderdesk/internal/adapter/events"
	"github.com/MikeRez0/orderdesk/internal/adapter/handler/http"
	"github.com/MikeRez0/orderdesk/internal/adapter/logger"
	"github.com/MikeRez0/orderdesk/internal/adapter/metrics"
	"github.com/MikeRez0/orderdesk/internal/adapter/observability"
	"github.com/MikeRez0/orderdesk/internal/adapter/storage"
	"github.com/MikeRez0/orderdesk/internal/adapter/storage/disk"
	"github.com/MikeRez0/orderdesk/internal/adapter/storage/memory"
	"github.com/MikeRez0/orderdesk/internal/adapter/storage/repository"
	"github.com/MikeRez0/orderdesk/internal/core/port"
	"github.com/MikeRez0/orderdesk/internal/core/service"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

type eventPublisher interface {
	port.OrderEventPublisher
	io.Closer
}

//	@title						orderdesk API
//	@version					1.0
//	@description				Orders, clients and products of a sales desk.
//	@BasePath					/api
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
func main() {
	conf, err := config.NewConfig(os.Args[1:])
	if err != nil {
		fmt.Printf("config error:%s\n", err)
		os.Exit(2)
	}

	log, err := logger.NewLogger(conf.App)
	if err != nil {
		fmt.Printf("error creating log: %s\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = log.Sync()
	}()

	if err := run(conf, log); err != nil {
		log.Error("orderdesk stopped", zap.Error(err))
		os.Exit(1)
	}
}

func run(conf *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := observability.SetupTracing(ctx, conf.Telemetry)
	if err != nil {
		return fmt.Errorf("tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Warn("tracing shutdown", zap.Error(err))
		}
	}()

	repo, err := openRepository(ctx, conf.Database, log)
	if err != nil {
		return err
	}
	defer repo.close()

	tokenService, err := auth.New(conf.Auth)
	if err != nil {
		return fmt.Errorf("token service: %w", err)
	}

	images, err := disk.NewImageStorage(conf.Storage)
	if err != nil {
		return fmt.Errorf("image storage: %w", err)
	}

	cnpjClient, err := cnpj.NewCnpjClient(conf.Cnpj, log.Named("Cnpj"))
	if err != nil {
		return fmt.Errorf("cnpj client: %w", err)
	}

	publisher, err := newPublisher(conf.Kafka, log.Named("Events"))
	if err != nil {
		return fmt.Errorf("event publisher: %w", err)
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Warn("event publisher close", zap.Error(err))
		}
	}()

	orderMetrics := metrics.NewOrderMetrics(prometheus.DefaultRegisterer)
	serverMetrics := metrics.NewServerMetrics(prometheus.DefaultRegisterer)

	orderSvc, err := service.NewOrderService(repo, publisher, orderMetrics, log.Named("Order service"))
	if err != nil {
		return err
	}
	clientSvc, err := service.NewClientService(repo, log.Named("Client service"))
	if err != nil {
		return err
	}
	productSvc, err := service.NewProductService(repo, images, log.Named("Product service"))
	if err != nil {
		return err
	}
	userSvc, err := service.NewUserService(repo, tokenService, log.Named("User service"))
	if err != nil {
		return err
	}
	cnpjSvc, err := service.NewCnpjService(cnpjClient, log.Named("Cnpj service"))
	if err != nil {
		return err
	}

	handlers := http.Handlers{
		Metrics:    metrics.Handler(prometheus.DefaultGatherer),
		Middleware: []gin.HandlerFunc{serverMetrics.Middleware()},
	}
	if handlers.Order, err = http.NewOrderHandler(orderSvc, log.Named("Order handler")); err != nil {
		return err
	}
	if handlers.Client, err = http.NewClientHandler(clientSvc, log.Named("Client handler")); err != nil {
		return err
	}
	if handlers.Product, err = http.NewProductHandler(productSvc, conf.Storage, log.Named("Product handler")); err != nil {
		return err
	}
	if handlers.User, err = http.NewUserHandler(userSvc, log.Named("User handler")); err != nil {
		return err
	}
	if handlers.Cnpj, err = http.NewCnpjHandler(cnpjSvc, log.Named("Cnpj handler")); err != nil {
		return err
	}

	if conf.App.Mode == config.AppModeProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	r, err := http.NewRouter(conf.HTTP, conf.Storage, tokenService, repo, handlers, log.Named("Router"))
	if err != nil {
		return fmt.Errorf("router: %w", err)
	}

	srv := r.Server(conf.HTTP.HostString)
	serveErr := make(chan error, 1)
	go func() {
		log.Info("Listening", zap.String("addr", srv.Addr))
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, nethttp.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

type closableRepository struct {
	port.Repository
	close func()
}

// openRepository picks postgres when a DSN is configured and the in-memory
// store otherwise.
func openRepository(ctx context.Context, conf *config.Database, log *zap.Logger) (*closableRepository, error) {
	if conf.DSN == "" {
		log.Warn("DATABASE_URI is empty, data is kept in memory")
		return &closableRepository{Repository: memory.NewStore(), close: func() {}}, nil
	}

	db, err := storage.NewDBStorage(ctx, conf)
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}
	if err := db.RunMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database migration: %w", err)
	}

	repo, err := repository.NewRepository(db)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("repository: %w", err)
	}
	return &closableRepository{Repository: repo, close: db.Close}, nil
}

func newPublisher(conf *config.Kafka, log *zap.Logger) (eventPublisher, error) {
	if len(conf.Brokers) == 0 {
		return events.NewLogPublisher(log), nil
	}
	return events.NewKafkaPublisher(conf, log)
}
