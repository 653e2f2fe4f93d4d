// Package config loads the application configuration from defaults, an
// optional YAML file and SIXJARS_ prefixed environment variables, each
// layer overriding the previous one.
package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog/log"
)

type Application struct {
	GinMode          string   `koanf:"ginmode"`
	LogFormat        string   `koanf:"logformat"`
	CORSAllowOrigins []string `koanf:"corsalloworigins"`
	Pprof            bool     `koanf:"pprof"`
	Database         Database `koanf:"db"`
}

type Database struct {
	// Path of the SQLite file, used unless Host is set
	Path string `koanf:"path"`

	// Setting Host switches the backend to PostgreSQL
	Host string `koanf:"host"`
	Port int    `koanf:"port"`
	User string `koanf:"user"`
	Pass string `koanf:"pass"`
	Name string `koanf:"name"`
}

func Load(path string) (Application, error) {
	var k = koanf.New(".")

	err := k.Load(structs.Provider(Application{
		GinMode:   "release",
		LogFormat: "json",
		Database: Database{
			Path: "data/backend.db",
			Port: 5432,
			User: "sixjars",
			Name: "sixjars",
		},
	}, "koanf"), nil)
	if err != nil {
		return Application{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if os.IsNotExist(err) {
			log.Debug().Str("path", path).Msg("no config file, using defaults and environment variables")
		} else {
			return Application{}, err
		}
	} else {
		log.Info().Str("path", path).Msg("loaded configuration file")
	}

	err = k.Load(env.Provider(".", env.Opt{
		Prefix: "SIXJARS_",
		TransformFunc: func(k, v string) (string, any) {
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, "SIXJARS_")), "_", ".")
			return k, v
		},
	}), nil)
	if err != nil {
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, err
	}

	return app, nil
}
