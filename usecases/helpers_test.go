package usecases

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"microfin-server/db"
	"microfin-server/entities"
)

// newTestDB opens a per-test in-memory sqlite database with the full schema.
// The name keeps connections from the pool pointed at the same database.
func newTestDB(t *testing.T) db.Database {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, gdb.AutoMigrate(&entities.User{}, &entities.Todo{}, &entities.Application{}))
	return &db.GormDatabase{DB: gdb}
}
