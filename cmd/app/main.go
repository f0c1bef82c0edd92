package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"ratfit/config"
	"ratfit/handlers"
	"ratfit/logger"
	"ratfit/repository"
	"ratfit/service"

	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()

	log, err := logger.New(cfg)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	repo, closeRepo, err := newRepository(ctx, cfg, log)
	if err != nil {
		log.Fatal("storage init failed", zap.Error(err))
	}
	defer closeRepo()

	svc := service.NewService(repo, log)
	h := handlers.NewHandler(svc, log)

	srv := http.Server{
		Handler:      handlers.NewRouter(h),
		Addr:         ":" + cfg.ServerPort,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		log.Error("listen failed", zap.Error(err))
		return
	}
	log.Info("server started",
		zap.String("port", cfg.ServerPort),
		zap.String("storage", cfg.StorageDriver),
	)
	if err := serve(ctx, &srv, ln, cfg.ShutdownTimeout); err != nil {
		log.Error("server stopped", zap.Error(err))
		return
	}
	log.Info("server stopped")
}

// serve runs srv on ln until ctx is done, then shuts it down and waits for
// in-flight requests to finish or for timeout to pass. It returns only
// after the server has stopped serving.
func serve(ctx context.Context, srv *http.Server, ln net.Listener, timeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	shutdownErr := srv.Shutdown(shutdownCtx)

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return shutdownErr
}

func newRepository(
	ctx context.Context,
	cfg config.Config,
	log *zap.Logger,
) (service.Repository, func(), error) {
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		db, err := config.InitDB(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		repo := repository.NewPostgresRepository(db)
		if err := repo.Migrate(ctx); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return repo, func() { _ = db.Close() }, nil
	case config.StorageMemory:
		return repository.NewMemoryRepository(), func() {}, nil
	default:
		log.Warn("unknown storage driver, using memory", zap.String("driver", cfg.StorageDriver))
		return repository.NewMemoryRepository(), func() {}, nil
	}
}
