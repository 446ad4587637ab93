package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Entry is one row of the storefront_kv table.
type Entry struct {
	Key       string         `gorm:"column:entry_key;primaryKey;type:varchar(191)"`
	Value     datatypes.JSON `gorm:"column:entry_value;type:json;not null"`
	UpdatedAt time.Time      `gorm:"column:updated_at;type:datetime(3);not null"`
}

func (Entry) TableName() string { return "storefront_kv" }

type Gorm struct {
	db *gorm.DB
}

func NewGorm(db *gorm.DB) *Gorm {
	return &Gorm{db: db}
}

// Migrate creates the storefront_kv table if it is missing.
func (g *Gorm) Migrate(ctx context.Context) error {
	return g.db.WithContext(ctx).AutoMigrate(&Entry{})
}

func (g *Gorm) Get(ctx context.Context, key string) ([]byte, error) {
	var e Entry
	err := g.db.WithContext(ctx).First(&e, "entry_key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("kv get %s: %w", key, err)
	}
	return []byte(e.Value), nil
}

// Set upserts the value; stored values are JSON documents.
func (g *Gorm) Set(ctx context.Context, key string, value []byte) error {
	e := Entry{Key: key, Value: datatypes.JSON(value), UpdatedAt: time.Now()}
	err := g.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "entry_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"entry_value", "updated_at"}),
		}).
		Create(&e).Error
	if err != nil {
		return fmt.Errorf("kv set %s: %w", key, err)
	}
	return nil
}

// Update locks the row with SELECT ... FOR UPDATE inside a transaction.
// Two first writers of the same key collide on the insert or the gap lock;
// the loser is retried and then sees the winner's row.
func (g *Gorm) Update(ctx context.Context, key string, fn UpdateFunc) error {
	err := withTxRetry(ctx, g.db, 5, func(tx *gorm.DB) error {
		var e Entry
		err := tx.WithContext(ctx).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&e, "entry_key = ?", key).Error
		found := true
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			found = false
		case err != nil:
			return err
		}

		var cur []byte
		if found {
			cur = []byte(e.Value)
		}

		next, err := fn(cur)
		if err != nil {
			return err
		}
		now := time.Now()
		if !found {
			// Plain insert: a concurrent first writer fails with 1062 and retries.
			return tx.WithContext(ctx).Create(&Entry{Key: key, Value: datatypes.JSON(next), UpdatedAt: now}).Error
		}
		return tx.WithContext(ctx).
			Model(&Entry{}).
			Where("entry_key = ?", key).
			Updates(map[string]any{"entry_value": datatypes.JSON(next), "updated_at": now}).Error
	})
	if err != nil {
		return fmt.Errorf("kv update %s: %w", key, err)
	}
	return nil
}

func (g *Gorm) Ping(ctx context.Context) error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (g *Gorm) Close() error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (g *Gorm) String() string { return "mysql(storefront_kv)" }

func withTxRetry(ctx context.Context, db *gorm.DB, attempts int, fn func(tx *gorm.DB) error) error {
	if attempts < 1 {
		attempts = 1
	}
	var lastErr error

	for i := 0; i < attempts; i++ {
		err := db.WithContext(ctx).Transaction(fn)
		if err == nil {
			return nil
		}
		lastErr = err

		if isRetryableMySQLError(err) && i < attempts-1 {
			time.Sleep(time.Duration(50*(i+1)) * time.Millisecond)
			continue
		}
		return err
	}
	return lastErr
}

func isRetryableMySQLError(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		// 1213 deadlock, 1205 lock wait timeout, 1062 concurrent first insert
		return me.Number == 1213 || me.Number == 1205 || me.Number == 1062
	}
	return false
}
