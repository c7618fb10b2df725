package main

import (
	"flag"
	"os"

	"github.com/rodrigonunnes/bancogo"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	var cfg bancogo.Config
	cfp := flag.String("config", "config.yml", "path to configuration file")
	flag.Parse()
	cfgfl, err := os.Open(*cfp)
	if err == nil {
		if err = yaml.NewDecoder(cfgfl).Decode(&cfg); err != nil {
			logger.Fatal().Err(err).Msg("error decoding config file")
		}
		cfgfl.Close()
	} else if !os.IsNotExist(err) {
		logger.Fatal().Err(err).Msg("error opening config file")
	}
	cfg.Defaults()

	store := bancogo.NewFileStore(cfg.DataFile)
	dir, err := bancogo.NewDirectory(store, &logger)
	if err != nil {
		logger.Fatal().Err(err).Str("arquivo", cfg.DataFile).Msg("error loading bank data")
	}

	console := bancogo.NewConsole(dir, cfg.Branch, os.Stdin, os.Stdout, &logger)
	console.Run()
}
