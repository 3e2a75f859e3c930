package db

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/unilabs/labplatform/pkg/middleware/logger"
)

type Config struct {
	Host    string
	Port    int
	User    string
	PW      string
	DBName  string
	SSLMode string
	LogConf LogConf
}

type LogConf struct {
	Level string
}

// Datastore wraps the gorm handle. All repos go through DBWithContext so a
// transaction opened by ExecTx is transparently reused down the call chain.
type Datastore struct {
	db *gorm.DB
}

type txKey struct{}

var store *Datastore

func InitPostgres(ctx context.Context, cfg *Config) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.PW, cfg.DBName, sslMode(cfg.SSLMode))

	g, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         gormLevel(cfg.LogConf.Level),
		TranslateError: true,
	})
	if err != nil {
		logger.Errorf(ctx, "open postgres err: %+v", err)
		panic(err)
	}

	sqlDB, err := g.DB()
	if err != nil {
		panic(err)
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	store = &Datastore{db: g}
}

// InitWithInstance installs an already-opened gorm handle. Tests use it with
// an in-memory sqlite database.
func InitWithInstance(g *gorm.DB) *Datastore {
	store = &Datastore{db: g}
	return store
}

func DB() *Datastore {
	return store
}

func ClosePostgres(ctx context.Context) {
	if store == nil {
		return
	}
	sqlDB, err := store.db.DB()
	if err != nil {
		logger.Warnf(ctx, "close postgres err: %+v", err)
		return
	}
	_ = sqlDB.Close()
	store = nil
}

func (d *Datastore) DBIns() *gorm.DB {
	return d.db
}

func (d *Datastore) DBWithContext(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return d.db.WithContext(ctx)
}

// ExecTx runs fn inside a transaction. Nested calls reuse the outer one.
func (d *Datastore) ExecTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

func sslMode(s string) string {
	if s == "" {
		return "disable"
	}
	return s
}

func gormLevel(level string) gormlogger.Interface {
	switch level {
	case "debug":
		return gormlogger.Default.LogMode(gormlogger.Info)
	case "error":
		return gormlogger.Default.LogMode(gormlogger.Error)
	default:
		return gormlogger.Default.LogMode(gormlogger.Warn)
	}
}
