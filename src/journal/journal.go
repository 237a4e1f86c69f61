// Package journal keeps an audit trail of capture attempts in a local
// sqlite database. Validation work wants to know what evidence was produced
// when, including failed attempts.
package journal

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Capture is one finished attempt, successful or not.
type Capture struct {
	ID        uint      `gorm:"primaryKey"`
	Code      string    `gorm:"not null;index"`
	Path      string    `gorm:"not null"`
	OK        bool      `gorm:"not null"`
	Reason    string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
}

type Journal struct {
	db *gorm.DB
}

// Open creates or opens the journal database at path and migrates the schema.
func Open(path string) (*Journal, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open journal database")
	}
	if err := db.AutoMigrate(&Capture{}); err != nil {
		return nil, errors.Wrap(err, "failed to migrate journal schema")
	}
	return &Journal{db: db}, nil
}

// Record appends one finished attempt. A nil captureErr marks success.
func (j *Journal) Record(code, path string, captureErr error) error {
	row := Capture{Code: code, Path: path, OK: captureErr == nil}
	if captureErr != nil {
		row.Reason = captureErr.Error()
	}
	if result := j.db.Create(&row); result.Error != nil {
		return errors.Wrap(result.Error, "failed to insert capture record")
	}
	return nil
}

// Recent returns the newest records, most recent first.
func (j *Journal) Recent(limit int) ([]Capture, error) {
	var rows []Capture
	result := j.db.Order("created_at DESC, id DESC").Limit(limit).Find(&rows)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to query capture records")
	}
	return rows, nil
}

// Close releases the underlying database handle.
func (j *Journal) Close() error {
	sqlDB, err := j.db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get underlying sql.DB")
	}
	return sqlDB.Close()
}
