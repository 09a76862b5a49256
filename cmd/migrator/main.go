package main

import (
	"errors"
	"flag"

	"github.com/golang-migrate/migrate/v4"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-mp/internal/config"
	"github.com/vancomm/minesweeper-mp/internal/database"
)

func main() {
	down := flag.Bool("down", false, "roll the journal schema back instead of forward")
	flag.Parse()

	log, err := config.NewLogger()
	if err != nil {
		logrus.Fatal(err)
	}

	url, err := config.DbURL()
	if err != nil {
		log.Fatal("unable to read database config: ", err)
	}

	migrator, err := database.NewMigrator(url, database.Migrations)
	if err != nil {
		log.Fatal(err)
	}
	defer migrator.Close()

	if *down {
		err = migrator.Down()
	} else {
		err = migrator.Up()
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Fatal("failed to migrate database: ", err)
	}

	version, dirty, err := migrator.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		log.Info("schema is empty")
		return
	} else if err != nil {
		log.Fatal("failed to check migration version: ", err)
	}
	log.WithFields(logrus.Fields{
		"version": version,
		"dirty":   dirty,
	}).Info("migration successful")
}
