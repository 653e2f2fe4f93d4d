package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sixjars/backend/internal/config"
	"github.com/sixjars/backend/internal/eventbus"
	"github.com/sixjars/backend/internal/models"
	"github.com/sixjars/backend/internal/router"
	"github.com/sixjars/backend/internal/tracker"
)

func main() {
	// A .env file is optional, variables already set win
	_ = godotenv.Load()

	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	gin.SetMode(cfg.GinMode)

	// Log format defaults to human readable for development
	// and JSON for release
	output := io.Writer(os.Stdout)
	if (cfg.LogFormat == "" && gin.IsDebugging()) || cfg.LogFormat == "human" {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	if cfg.Database.Host != "" {
		log.Debug().Msg("database host is set, using postgresql")

		dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.User, cfg.Database.Pass, cfg.Database.Name)
		err = models.ConnectPostgres(dsn)
	} else {
		log.Debug().Msg("database host is not set, using sqlite database")

		err = os.MkdirAll(filepath.Dir(cfg.Database.Path), os.ModePerm)
		if err != nil {
			log.Fatal().Msg("could not create data directory")
		}
		err = models.Connect(cfg.Database.Path)
	}
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	bus := eventbus.New()
	tracker.Register(bus)

	r, err := router.Router(cfg, bus)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	if err := r.Run(); err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Let in-flight expense events finish before exiting
	bus.Wait()
}
