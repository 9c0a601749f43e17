// @title AR World Chat
// @version 0.1
// @description Username-only chat with direct messages and a premium crown sticker.

// @host localhost:8080
// @BasePath /
// @query.collection.format multi
// @schemes http

package main

import (
	_ "github.com/arjunugale18-cmyk/Ar-world-chatt/docs"
	"github.com/arjunugale18-cmyk/Ar-world-chatt/internal/app"
	"github.com/arjunugale18-cmyk/Ar-world-chatt/internal/config"
	"github.com/arjunugale18-cmyk/Ar-world-chatt/internal/pkg/logging"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config error")
	}

	logging.Init(cfg.Env)

	app.Run(cfg)
}
