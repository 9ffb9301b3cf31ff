// Package taskstore persists tasks in a single SQLite table.
package taskstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Task statuses accepted by the store.
const (
	StatusComplete    = "complete"
	StatusNotComplete = "not complete"
)

var (
	ErrTaskExists   = errors.New("task already exists")
	ErrTaskNotFound = errors.New("task not found")
)

// Task is one row of the task table. Names are unique.
type Task struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"uniqueIndex;not null" json:"name"`
	Description string    `json:"description"`
	Status      string    `gorm:"not null" json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Store wraps the GORM connection to the task database.
type Store struct {
	db *gorm.DB
}

// Open connects to the SQLite database at path, creating parent directories
// and migrating the schema as needed. GORM's logger is silenced because
// stdout belongs to the protocol stream.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: logger.Discard})
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	// Keep a single connection; SQLite works best with one writer.
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
	}

	if err := db.AutoMigrate(&Task{}); err != nil {
		return nil, fmt.Errorf("migrate tasks: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Add inserts a task with status "not complete". Adding a name that already
// exists fails with ErrTaskExists and leaves the existing row untouched.
func (s *Store) Add(name, description string) (*Task, error) {
	var count int64
	if err := s.db.Model(&Task{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("check task name: %w", err)
	}
	if count > 0 {
		return nil, fmt.Errorf("%w: %s", ErrTaskExists, name)
	}

	t := &Task{Name: name, Description: description, Status: StatusNotComplete}
	if err := s.db.Create(t).Error; err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}
	return t, nil
}

// List returns all tasks, newest first.
func (s *Store) List() ([]Task, error) {
	tasks := []Task{}
	if err := s.db.Order("created_at DESC").Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// SetStatus updates the status of the named task. Setting the status it
// already has is an idempotent no-op that still succeeds.
func (s *Store) SetStatus(name, status string) (*Task, error) {
	if status != StatusComplete && status != StatusNotComplete {
		return nil, fmt.Errorf("invalid status %q", status)
	}

	var t Task
	err := s.db.Where("name = ?", name).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrTaskNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("find task: %w", err)
	}

	if t.Status == status {
		return &t, nil
	}

	t.Status = status
	if err := s.db.Save(&t).Error; err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}
	return &t, nil
}
