// Package laptime persists finished lap times in a local SQLite file so
// the best lap survives across sessions.
package laptime

import (
	"errors"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Lap is one finished run.
type Lap struct {
	ID        uint `gorm:"primarykey"`
	Seconds   float64
	CreatedAt time.Time
}

// Store wraps the lap database.
type Store struct {
	db  *gorm.DB
	log zerolog.Logger
}

// Open opens (or creates) the SQLite database at path and migrates the
// schema.
func Open(path string, log zerolog.Logger) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open lap database: %w", err)
	}
	if err := db.AutoMigrate(&Lap{}); err != nil {
		return nil, fmt.Errorf("failed to migrate lap database: %w", err)
	}
	return &Store{
		db:  db,
		log: log.With().Str("component", "laptime").Logger(),
	}, nil
}

// Record stores one finished lap.
func (s *Store) Record(seconds float64) error {
	if err := s.db.Create(&Lap{Seconds: seconds}).Error; err != nil {
		return fmt.Errorf("failed to record lap: %w", err)
	}
	s.log.Debug().Float64("seconds", seconds).Msg("lap recorded")
	return nil
}

// Best returns the fastest recorded lap. ok is false when no lap has
// been recorded yet.
func (s *Store) Best() (seconds float64, ok bool, err error) {
	var lap Lap
	result := s.db.Order("seconds asc").First(&lap)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to query best lap: %w", result.Error)
	}
	return lap.Seconds, true, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
