package main

import (
	"clockwise/config"
	"clockwise/di"
	"clockwise/shared/logger"
	"clockwise/shared/timezone"
)

func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	timezone.Init(cfg.App.Timezone)

	http := di.InitializeService()
	http.Serve()
}
