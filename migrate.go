package main

import (
	"log"

	"github.com/birostris/PadelRanking/internal/config"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

func applyMigrations() error {
	conf, err := config.NewFromUserConfigDir()
	if err != nil {
		return err
	}

	m, err := migrate.New("file://migrations", "sqlite3://"+conf.CacheDSN)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil {
		if err == migrate.ErrNoChange {
			log.Print("info: snapshot cache schema is up to date")
			return nil
		}

		return err
	}

	log.Print("info: snapshot cache schema migrated")

	return nil
}
