package db

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"time"

	"github.com/bagdasarian/position-helper/internal/config"
	"github.com/bagdasarian/position-helper/internal/logger"
	_ "github.com/jackc/pgx/v5/stdlib"
)

const (
	connectAttempts = 5
	retryDelay      = 2 * time.Second
)

// connString собирает URL подключения; пароль экранируется
func connString(cfg config.DatabaseConfig) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Path:     cfg.DBName,
		RawQuery: url.Values{"sslmode": {cfg.SSLMode}}.Encode(),
	}
	return u.String()
}

// Open подключается к PostgreSQL, повторяя попытки, пока база поднимается.
// Приложение однопользовательское, поэтому пул небольшой.
func Open(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, error) {
	conn, err := sql.Open("pgx", connString(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	conn.SetMaxOpenConns(4)
	conn.SetMaxIdleConns(2)
	conn.SetConnMaxIdleTime(5 * time.Minute)

	for attempt := 1; ; attempt++ {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err = conn.PingContext(pingCtx)
		cancel()
		if err == nil {
			return conn, nil
		}
		if attempt == connectAttempts {
			break
		}
		logger.Warn("database is not ready, retrying", "attempt", attempt, "host", cfg.Host, "err", err)

		select {
		case <-ctx.Done():
			conn.Close()
			return nil, ctx.Err()
		case <-time.After(retryDelay):
		}
	}

	conn.Close()
	return nil, fmt.Errorf("failed to ping database after %d attempts: %w", connectAttempts, err)
}

func MustLoad(cfg *config.Config) *sql.DB {
	conn, err := Open(context.Background(), cfg.Database)
	if err != nil {
		panic(fmt.Sprintf("failed to connect to database: %v", err))
	}
	return conn
}
