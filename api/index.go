package handler

import (
	"clockwise/config"
	"clockwise/di"
	"clockwise/shared/logger"
	"clockwise/shared/timezone"
	"net/http"
	"sync"
)

var (
	once    sync.Once
	service http.Handler
)

// Handler is the serverless entrypoint. Warm invocations reuse the same service,
// but the memory session store does not survive cold starts; set SESSION_STORE=redis.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger(cfg)

		logger.SetLogLevel(cfg)

		timezone.Init(cfg.App.Timezone)

		service = di.InitializeService()
	})

	service.ServeHTTP(w, r)
}
