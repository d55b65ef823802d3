package scheduler

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/mrlokans/bookshelf/internal/entities"
	"github.com/mrlokans/bookshelf/internal/exporters"
)

// CatalogLister is the read side of the catalog a backup needs.
type CatalogLister interface {
	List() ([]entities.Book, error)
}

// BackupConfig describes when and where catalog backups are written.
type BackupConfig struct {
	Schedule string // standard 5-field cron expression; empty disables backups
	Dir      string
	Format   string // yaml or markdown
}

// BackupScheduler periodically exports the whole catalog to a timestamped file.
type BackupScheduler struct {
	catalog CatalogLister
	config  BackupConfig
	now     func() time.Time

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.RWMutex
	isRunning  bool
	cancelFunc context.CancelFunc
}

func NewBackupScheduler(catalog CatalogLister, config BackupConfig) *BackupScheduler {
	return &BackupScheduler{
		catalog: catalog,
		config:  config,
		now:     time.Now,
		cron:    cron.New(cron.WithParser(scheduleParser)),
	}
}

var scheduleParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// Start begins the scheduler if a schedule is configured. It stops when ctx is done.
func (s *BackupScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	if s.config.Schedule == "" {
		log.Printf("Backup scheduler: disabled")
		return nil
	}

	if _, ok := exporters.ForFormat(s.config.Format); !ok {
		return fmt.Errorf("unknown backup format %q", s.config.Format)
	}

	if err := ValidateSchedule(s.config.Schedule); err != nil {
		return fmt.Errorf("invalid cron schedule '%s': %w", s.config.Schedule, err)
	}

	entryID, err := s.cron.AddFunc(s.config.Schedule, s.runBackup)
	if err != nil {
		return fmt.Errorf("failed to schedule backup job: %w", err)
	}
	s.entryID = entryID

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	s.cron.Start()
	s.isRunning = true

	nextRun, _ := NextRunTime(s.config.Schedule)
	log.Printf("Backup scheduler: started with schedule '%s' (%s). Next run: %v",
		s.config.Schedule,
		DescribeSchedule(s.config.Schedule),
		nextRun)

	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop waits for a running backup to finish and stops the scheduler.
func (s *BackupScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()

	s.cron.Remove(s.entryID)
	s.isRunning = false
	s.cancelFunc()
	s.cancelFunc = nil

	log.Printf("Backup scheduler: stopped")
}

// IsRunning returns whether the scheduler is active
func (s *BackupScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// NextRun returns when the next backup will occur, or nil when stopped.
func (s *BackupScheduler) NextRun() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return nil
	}

	for _, entry := range s.cron.Entries() {
		if entry.ID == s.entryID {
			t := entry.Next
			return &t
		}
	}
	return nil
}

// RunNow writes one backup immediately and returns the file path.
func (s *BackupScheduler) RunNow() (string, exporters.ExportResult, error) {
	exporter, ok := exporters.ForFormat(s.config.Format)
	if !ok {
		return "", exporters.ExportResult{}, fmt.Errorf("unknown backup format %q", s.config.Format)
	}

	books, err := s.catalog.List()
	if err != nil {
		return "", exporters.ExportResult{}, fmt.Errorf("failed to list books: %w", err)
	}

	if err := os.MkdirAll(s.config.Dir, 0o755); err != nil {
		return "", exporters.ExportResult{}, fmt.Errorf("failed to create backup directory: %w", err)
	}

	path := filepath.Join(s.config.Dir, backupFilename(s.now(), s.config.Format))
	file, err := os.Create(path)
	if err != nil {
		return "", exporters.ExportResult{}, fmt.Errorf("failed to create backup file: %w", err)
	}

	result, err := exporter.Export(file, books)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(path)
		return "", exporters.ExportResult{}, fmt.Errorf("failed to write backup: %w", err)
	}

	return path, result, nil
}

func (s *BackupScheduler) runBackup() {
	startTime := time.Now()

	path, result, err := s.RunNow()
	if err != nil {
		log.Printf("Backup: failed: %v", err)
		return
	}

	log.Printf("Backup: wrote %d books to %s in %v",
		result.BooksProcessed, path, time.Since(startTime).Round(time.Millisecond))
}

func backupFilename(t time.Time, format string) string {
	return fmt.Sprintf("bookshelf-%s.%s", t.Format("20060102-150405"), exporters.FileExtension(format))
}

// ValidateSchedule validates a cron schedule string
func ValidateSchedule(schedule string) error {
	_, err := scheduleParser.Parse(schedule)
	return err
}

// DescribeSchedule returns a human-readable description of a cron schedule
func DescribeSchedule(schedule string) string {
	switch schedule {
	case "0 * * * *":
		return "Every hour at :00"
	case "*/15 * * * *":
		return "Every 15 minutes"
	case "*/30 * * * *":
		return "Every 30 minutes"
	case "0 */6 * * *":
		return "Every 6 hours"
	case "0 0 * * *":
		return "Daily at midnight"
	case "0 0 * * 0":
		return "Weekly on Sunday at midnight"
	default:
		return "Custom schedule: " + schedule
	}
}

// NextRunTime calculates when a schedule fires next, counting from now.
func NextRunTime(schedule string) (*time.Time, error) {
	sched, err := scheduleParser.Parse(schedule)
	if err != nil {
		return nil, err
	}
	next := sched.Next(time.Now())
	return &next, nil
}
