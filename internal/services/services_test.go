package services

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"portalchat/internal/cache"
	"portalchat/internal/models"
	"portalchat/internal/repositories"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db") + "?_busy_timeout=5000"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Employee{},
		&models.Conversation{},
		&models.Message{},
	))
	return db
}

func newChatService(t *testing.T, db *gorm.DB) *ChatService {
	t.Helper()
	resolver := NewIdentityResolver(repositories.NewEmployeeRepository(db), nil, 0)
	return NewChatService(
		repositories.NewMessageRepository(db),
		repositories.NewConversationRepository(db),
		resolver,
	)
}

func seedEmployee(t *testing.T, db *gorm.DB, employee *models.Employee) *models.Employee {
	t.Helper()
	require.NoError(t, db.Create(employee).Error)
	return employee
}

// The redis adapter must keep satisfying the resolver's cache contract.
var _ IdentityCache = (*cache.RedisCache)(nil)

// mapCache is an in-process stand-in for the redis identity cache.
type mapCache struct {
	mu      sync.Mutex
	entries map[string]string
}

func newMapCache() *mapCache {
	return &mapCache{entries: make(map[string]string)}
}

func (c *mapCache) Get(_ context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	value, ok := c.entries[key]
	if !ok {
		return "", cache.ErrMiss
	}
	return value, nil
}

func (c *mapCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
	return nil
}
