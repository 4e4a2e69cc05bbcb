package middleware_test

import (
	"clockwise/config"
	"clockwise/infras/otel/mocks"
	"clockwise/shared/cache"
	cacheMocks "clockwise/shared/cache/mocks"
	"clockwise/transport/http/middleware"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var ok = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func limiterConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 3
	cfg.App.RateLimiter.WindowSeconds = 30

	return cfg
}

func TestRateLimit(t *testing.T) {
	cfg := limiterConfig()
	app := middleware.NewAppMiddleware(mocks.NewOtel(), cfg, cache.NewMemoryCache(8, mocks.NewOtel()))
	handler := app.RateLimit()(ok)

	send := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Forwarded-For", ip+", 10.0.0.1")
		req.Header.Set("User-Agent", "test")

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		return rec
	}

	for i, remaining := range []string{"2", "1", "0"} {
		rec := send("198.51.100.1")

		assert.Equal(t, http.StatusOK, rec.Code, "request %d", i)
		assert.Equal(t, "3", rec.Header().Get("X-RateLimit-Limit"))
		assert.Equal(t, remaining, rec.Header().Get("X-RateLimit-Remaining"))
		assert.Equal(t, "30", rec.Header().Get("X-RateLimit-Window"))
	}

	assert.Equal(t, http.StatusTooManyRequests, send("198.51.100.1").Code)
	assert.Equal(t, http.StatusOK, send("198.51.100.2").Code)
}

func TestRateLimitDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	app := middleware.NewAppMiddleware(mocks.NewOtel(), &config.Config{}, cacheMocks.NewMockCache(ctrl))

	rec := httptest.NewRecorder()
	app.RateLimit()(ok).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimitFailsOpen(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := cacheMocks.NewMockCache(ctrl)
	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	app := middleware.NewAppMiddleware(mocks.NewOtel(), limiterConfig(), mockCache)

	rec := httptest.NewRecorder()
	app.RateLimit()(ok).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTracingAndLoggerPassThrough(t *testing.T) {
	app := middleware.NewAppMiddleware(mocks.NewOtel(), &config.Config{}, cache.NewMemoryCache(1, mocks.NewOtel()))

	teapot := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	app.Tracing(app.RequestLogger(teapot)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestCORSDisabledIsPassThrough(t *testing.T) {
	app := middleware.NewAppMiddleware(mocks.NewOtel(), &config.Config{}, cache.NewMemoryCache(1, mocks.NewOtel()))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://example.com")

	rec := httptest.NewRecorder()
	app.CORS()(ok).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
