package persistence

import (
	"database/sql"
	"fmt"

	"mytube-channels/infrastructure/configuration"
	"mytube-channels/infrastructure/logger"

	_ "github.com/lib/pq"
)

// NewPostgreSQLDB opens the channels database from configuration.
func NewPostgreSQLDB() (*sql.DB, error) {
	cfg := configuration.C.Database.Psql
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name,
	)
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Cannot open PostgreSQL connection")
		return nil, err
	}
	if err := db.Ping(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Cannot reach PostgreSQL")
		return nil, err
	}
	return db, nil
}
