package database

import (
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"eccli/models"
)

// ErrUnavailable is returned by all query helpers when the local
// database could not be opened at startup.
var ErrUnavailable = errors.New("local database unavailable")

var DB *gorm.DB

// Start opens the local cache database under the data directory. The
// cache is best-effort: on failure the CLI keeps working, it just
// re-fetches quest keys and records no submission history.
func Start(dataDir string) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		zap.S().Warnf("failed to create data directory: %v", err)
		return
	}
	path := filepath.Join(dataDir, "eccli.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		zap.S().Warnf("failed to open local database: %v", err)
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		zap.S().Warnf("failed to get database connection: %v", err)
		return
	}
	// sqlite: a single writer avoids SQLITE_BUSY under concurrent fetches
	sqlDB.SetMaxOpenConns(1)
	if err := migrateDatabase(db); err != nil {
		zap.S().Warnf("failed to migrate local database: %v", err)
		return
	}
	DB = db
}

func Available() bool {
	return DB != nil
}

func migrateDatabase(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.QuestKeys{},
		&models.Submission{},
	)
}
