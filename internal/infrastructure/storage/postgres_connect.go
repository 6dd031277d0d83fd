package storage

import (
	"database/sql"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	postgresConnectAttemptsDefault = 20
	postgresConnectDelayDefault    = 2 * time.Second
)

// BuildPostgresDSNFromEnv POSTGRES_* o'zgaruvchilardan DSN yig'adi
func BuildPostgresDSNFromEnv() string {
	host := strings.TrimSpace(os.Getenv("POSTGRES_HOST"))
	user := strings.TrimSpace(os.Getenv("POSTGRES_USER"))
	password := os.Getenv("POSTGRES_PASSWORD")
	db := strings.TrimSpace(os.Getenv("POSTGRES_DB"))
	port := strings.TrimSpace(os.Getenv("POSTGRES_PORT"))
	sslmode := strings.TrimSpace(os.Getenv("POSTGRES_SSLMODE"))

	if host == "" || user == "" || db == "" {
		return ""
	}
	if port == "" {
		port = "5432"
	}
	if sslmode == "" {
		sslmode = "disable"
	}

	db = strings.TrimPrefix(db, "/")
	u := url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(host, port),
		Path:   "/" + db,
	}
	if password == "" {
		u.User = url.User(user)
	} else {
		u.User = url.UserPassword(user, password)
	}
	q := u.Query()
	q.Set("sslmode", sslmode)
	u.RawQuery = q.Encode()
	return u.String()
}

// openPostgresWithRetry konteyner muhitida DB keyinroq ko'tarilishi
// mumkin, shuning uchun bir necha urinish bilan ulanamiz
func openPostgresWithRetry(dsn string) (*sql.DB, error) {
	attempts := getenvInt("POSTGRES_CONNECT_MAX_ATTEMPTS", postgresConnectAttemptsDefault)
	delaySeconds := getenvInt("POSTGRES_CONNECT_RETRY_SECONDS", int(postgresConnectDelayDefault/time.Second))
	delay := time.Duration(delaySeconds) * time.Second
	if attempts <= 0 {
		attempts = postgresConnectAttemptsDefault
	}
	if delay <= 0 {
		delay = postgresConnectDelayDefault
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		db, err := sql.Open("postgres", dsn)
		if err == nil {
			if pingErr := db.Ping(); pingErr == nil {
				return db, nil
			} else {
				err = pingErr
			}
		}
		if db != nil {
			_ = db.Close()
		}
		lastErr = err
		if attempt < attempts {
			time.Sleep(delay)
		}
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("postgres connection failed")
	}
	return nil, lastErr
}

func getenvInt(key string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return val
}
