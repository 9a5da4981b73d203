package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/glowshelf/go-backend/internal/cfg"
	v1Http "github.com/glowshelf/go-backend/internal/delivery/v1/http"
	"github.com/glowshelf/go-backend/internal/infrastructure/kafka"
	minioInfra "github.com/glowshelf/go-backend/internal/infrastructure/minio"
	s3Repo "github.com/glowshelf/go-backend/internal/repository/minio"
	"github.com/glowshelf/go-backend/internal/repository/pgdb"
	pgdbConv "github.com/glowshelf/go-backend/internal/repository/pgdb/converter/generated"
	"github.com/glowshelf/go-backend/internal/repository/redis"
	redisConv "github.com/glowshelf/go-backend/internal/repository/redis/converter/generated"
	"github.com/glowshelf/go-backend/internal/usecase"
	"github.com/glowshelf/go-backend/pkg/clients"
	"github.com/glowshelf/go-backend/pkg/closer"
	"github.com/glowshelf/go-backend/pkg/e"
	"github.com/glowshelf/go-backend/pkg/logger"
	"github.com/glowshelf/go-backend/pkg/postgres"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

// App связывает конфигурацию, хранилища, инфраструктуру и HTTP-сервер
// и управляет их жизненным циклом.
type App struct {
	cfg    *config.Config
	logger logger.Logger
	closer *closer.Closer

	httpSrv      *v1Http.Server
	imagesInfra  *minioInfra.MinioInfrastructure
	outboxWorker *kafka.OutboxWorker

	shutdownCancel context.CancelFunc
}

func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	const shutdownForcedTimeout = 3 * time.Second

	a := &App{
		cfg:    cfg,
		logger: log,
		closer: closer.NewCloser(shutdownForcedTimeout),
	}

	// Контекст живёт дольше запросов: его отменой завершаются фоновые
	// задачи (outbox-воркер, очистка MinIO) при остановке приложения.
	shutdownCtx, shutdownCancel := context.WithCancel(context.Background())
	a.shutdownCancel = shutdownCancel

	db, err := initPGDB(log, cfg)
	if err != nil {
		shutdownCancel()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	a.closer.Add(func(ctx context.Context) error {
		db.Close()
		return nil
	})

	prConv := pgdbConv.NewProductConverterImpl()
	brandConv := pgdbConv.NewBrandConverterImpl()
	catConv := pgdbConv.NewCategoryConverterImpl()
	outboxConv := pgdbConv.NewOutboxEventConverterImpl()
	summaryConv := redisConv.NewStatusSummaryConverterImpl()

	productRepo := pgdb.NewProductRepo(db.Pool, prConv)
	brandRepo := pgdb.NewBrandRepo(db.Pool, brandConv)
	categoryRepo := pgdb.NewCategoryRepo(db.Pool, catConv)
	usageRepo := pgdb.NewUsageLogRepo(db.Pool)
	outboxRepo := pgdb.NewOutboxEventRepo(db.Pool, outboxConv)

	minioClient, err := clients.NewMinIOClient(cfg.Minio)
	if err != nil {
		shutdownCancel()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	minioCtx, minioCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := clients.EnsureBucket(minioCtx, minioClient, cfg.Minio.BucketName); err != nil {
		minioCancel()
		shutdownCancel()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	minioCancel()

	imageRepo := s3Repo.NewImageRepo(minioClient, cfg.Minio)
	a.imagesInfra = minioInfra.NewMinioInfrastructure(imageRepo, cfg.Minio, log, shutdownCtx)

	redisClient := clients.NewRedisClient(cfg.Redis)
	redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisClient.Ping(redisCtx); err != nil {
		redisCancel()
		shutdownCancel()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	redisCancel()
	a.closer.Add(func(ctx context.Context) error {
		return redisClient.Client.Close()
	})

	cacheRepo := redis.NewCacheRepo(redisClient, summaryConv, cfg.Redis, log)

	producer, err := kafka.NewProducer(log, cfg.Kafka)
	if err != nil {
		shutdownCancel()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	if err := producer.EnsureTopic(10 * time.Second); err != nil {
		log.Warnf("kafka topic check failed: %v", err)
	}
	a.closer.Add(func(ctx context.Context) error {
		return producer.Close()
	})

	a.outboxWorker = kafka.NewOutboxWorker(outboxRepo, log, producer, db.Dsn)

	productUC := usecase.NewProductUC(
		productRepo,
		brandRepo,
		categoryRepo,
		usageRepo,
		db.Pool,
		a.imagesInfra,
		outboxRepo,
		cacheRepo,
		log,
	)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, log, cfg.App.Timezone)
	router.Init(productUC)

	a.httpSrv = v1Http.NewServer(r, cfg.Http)

	return a, nil
}

// Run запускает фоновые процессы и HTTP-сервер и блокируется до сигнала
// завершения или фатальной ошибки сервера.
func (a *App) Run() error {
	workerCtx, workerCancel := context.WithCancel(context.Background())
	a.outboxWorker.Start(workerCtx)

	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Errorf(err, "HTTP server failed")
			errCh <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := a.httpSrv.Stop(shutdownCtx); err != nil {
		a.logger.Errorf(err, "HTTP server shutdown error")
	} else {
		a.logger.Infof("HTTP server stopped")
	}

	workerCancel()
	a.outboxWorker.Stop()
	a.logger.Infof("Outbox worker stopped")

	if err := a.imagesInfra.WaitForCleanup(shutdownCtx); err != nil {
		a.logger.Warnf("MinIO cleanup error: %v", err)
	} else {
		a.logger.Infof("MinIO cleanup completed")
	}

	a.shutdownCancel()

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Warnf("resource close error: %v", err)
	}

	a.logger.Infof("Application shutdown complete")
	return appErr
}

func initPGDB(logger logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(cfg.Db)
	if err != nil {
		logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(logger); err != nil {
		logger.Errorf(err, "failed to run migrations")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.Ping(); err != nil {
		logger.Errorf(err, "failed to ping database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
