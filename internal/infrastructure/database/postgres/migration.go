// internal/infrastructure/database/postgres/migration.go
package postgres

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/domain/order"
	"gorm.io/gorm"
)

// Migration handles database migrations
type Migration struct {
	db *gorm.DB
}

// NewMigration creates a new migration instance
func NewMigration(db *gorm.DB) *Migration {
	return &Migration{
		db: db,
	}
}

// RunAutoMigrations runs GORM auto-migrations for all models. Catalog
// products and carts are not migrated: products live in the remote
// backend and carts in Redis; only placed orders are stored here.
func (m *Migration) RunAutoMigrations() error {
	logrus.Info("Running database auto-migrations")

	models := []interface{}{
		&order.Order{},
		&order.OrderItem{},
		&order.OrderStatusHistory{},
	}

	for _, model := range models {
		if err := m.db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	return nil
}

// CreateIndexes creates additional indexes not covered by GORM tags
func (m *Migration) CreateIndexes() error {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_orders_session_created ON orders (session_id, created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_orders_status ON orders (status)",
	}

	for _, idx := range indexes {
		if err := m.db.Exec(idx).Error; err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	return nil
}
