package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookshelf/internal/catalog"
	"github.com/mrlokans/bookshelf/internal/config"
	"github.com/mrlokans/bookshelf/internal/database"
	http_controllers "github.com/mrlokans/bookshelf/internal/http"
	"github.com/mrlokans/bookshelf/internal/scheduler"
)

// Serve runs the router until SIGINT or SIGTERM, then shuts down gracefully.
func Serve(router *gin.Engine, cfg *config.Config) error {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Printf("Starting server at %s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serveErr <- err
		}
		close(serveErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-quit:
	}

	log.Printf("Shutdown Server, waiting %v before killing", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	log.Println("Server exiting")
	return nil
}

// Run opens the catalog and serves the HTTP API until interrupted.
func Run(cfg *config.Config, version string) error {
	log.Printf("Starting bookshelf v%s", version)

	db, err := database.NewDatabase(cfg.Database.Path, database.WithLogLevel(database.ParseLogLevel(cfg.Database.LogLevel)))
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	svc := catalog.NewService(db)
	books, err := svc.Load()
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	log.Printf("Catalog loaded with %d books", len(books))

	backupCtx, stopBackups := context.WithCancel(context.Background())
	defer stopBackups()

	backups := scheduler.NewBackupScheduler(svc, scheduler.BackupConfig{
		Schedule: cfg.Backup.Schedule,
		Dir:      cfg.Backup.Dir,
		Format:   cfg.Backup.Format,
	})
	if err := backups.Start(backupCtx); err != nil {
		return fmt.Errorf("failed to start backup scheduler: %w", err)
	}
	defer backups.Stop()

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		Catalog:  svc,
		Database: db,
		Version:  version,
	})

	return Serve(router, cfg)
}
