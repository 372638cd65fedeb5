package history

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ytget/ytdlui/internal/model"
	"github.com/ytget/ytdlui/internal/platform"
)

// DefaultLimit is the number of runs returned when no limit is given
const DefaultLimit = 20

// ErrRunNotFinished is returned when recording a run that is still active
var ErrRunNotFinished = errors.New("run not finished")

// Run is one finished download run as stored in the database
type Run struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	State       string    `gorm:"index" json:"state"`
	TotalCount  int       `json:"total_count"`
	FailedCount int       `json:"failed_count"`
	FailedURLs  string    `json:"failed_urls"` // newline separated
	StartedAt   time.Time `gorm:"index" json:"started_at"`
	FinishedAt  time.Time `json:"finished_at"`
}

// TableName returns the table name for Run
func (Run) TableName() string {
	return "runs"
}

// FromSummary converts a run summary into its stored form
func FromSummary(s model.RunSummary) *Run {
	return &Run{
		ID:          s.ID,
		State:       s.State.String(),
		TotalCount:  s.TotalCount,
		FailedCount: len(s.FailedURLs),
		FailedURLs:  strings.Join(s.FailedURLs, "\n"),
		StartedAt:   s.StartedAt,
		FinishedAt:  s.FinishedAt,
	}
}

// Summary converts the stored form back into a run summary
func (r *Run) Summary() model.RunSummary {
	failed := []string{}
	if r.FailedURLs != "" {
		failed = strings.Split(r.FailedURLs, "\n")
	}
	return model.RunSummary{
		ID:         r.ID,
		State:      model.RunState(r.State),
		TotalCount: r.TotalCount,
		FailedURLs: failed,
		StartedAt:  r.StartedAt,
		FinishedAt: r.FinishedAt,
	}
}

// Store persists run history in SQLite
type Store struct {
	db *gorm.DB
}

// Open opens (creating if needed) the history database at dbPath
func Open(dbPath string) (*Store, error) {
	if dbPath != ":memory:" {
		if err := platform.CreateDirectoryIfNotExists(filepath.Dir(dbPath)); err != nil {
			return nil, fmt.Errorf("failed to create history directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.AutoMigrate(&Run{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Store{db: db}, nil
}

// Record stores a finished run
func (s *Store) Record(ctx context.Context, summary model.RunSummary) error {
	if !summary.State.IsFinished() {
		return fmt.Errorf("failed to record run %s: %w", summary.ID, ErrRunNotFinished)
	}
	if err := s.db.WithContext(ctx).Create(FromSummary(summary)).Error; err != nil {
		return fmt.Errorf("failed to record run %s: %w", summary.ID, err)
	}
	return nil
}

// Recent returns the latest runs, newest first
func (s *Store) Recent(ctx context.Context, limit int) ([]model.RunSummary, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	var runs []*Run
	err := s.db.WithContext(ctx).
		Order("started_at DESC").
		Limit(limit).
		Find(&runs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}

	summaries := make([]model.RunSummary, 0, len(runs))
	for _, r := range runs {
		summaries = append(summaries, r.Summary())
	}
	return summaries, nil
}

// Count returns the number of stored runs
func (s *Store) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&Run{}).Count(&count).Error
	return count, err
}

// Close closes the database connection
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
