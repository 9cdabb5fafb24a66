package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/yizeng/campus-events/internal/config"
	"github.com/yizeng/campus-events/internal/repository/dao"
)

func OpenPostgres(conf *config.PostgresConfig) (*gorm.DB, error) {
	return open(conf.DSN(), conf)
}

// OpenPostgresWithURL connects with a full connection URL. conf still sizes the pool.
func OpenPostgresWithURL(dbURL string, conf *config.PostgresConfig) (*gorm.DB, error) {
	return open(dbURL, conf)
}

func open(dsn string, conf *config.PostgresConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("gorm.Open -> %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("db.DB -> %w", err)
	}
	sqlDB.SetMaxOpenConns(conf.MaxConns)
	sqlDB.SetMaxIdleConns(conf.MaxConns)
	sqlDB.SetConnMaxLifetime(conf.ConnMaxLifetime)

	if err = warmUp(sqlDB, conf.MinConns, conf.AcquireTimeout); err != nil {
		return nil, fmt.Errorf("warmUp -> %w", err)
	}

	if err = dao.InitTables(db); err != nil {
		return nil, fmt.Errorf("dao.InitTables -> %w", err)
	}

	zap.L().Info("connected to postgres",
		zap.Int("min_conns", conf.MinConns),
		zap.Int("max_conns", conf.MaxConns),
	)

	return db, nil
}

// warmUp opens n connections up front and returns them to the idle pool.
func warmUp(sqlDB *sql.DB, n int, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	conns := make([]*sql.Conn, 0, n)
	defer func() {
		for _, c := range conns {
			_ = c.Close()
		}
	}()

	for i := 0; i < n; i++ {
		c, err := sqlDB.Conn(ctx)
		if err != nil {
			return fmt.Errorf("sqlDB.Conn -> %w", err)
		}
		conns = append(conns, c)

		if err = c.PingContext(ctx); err != nil {
			return fmt.Errorf("c.PingContext -> %w", err)
		}
	}

	return nil
}
