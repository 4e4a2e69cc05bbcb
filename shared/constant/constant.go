package constant

import "time"

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeySessionID contextKey = "session_id"
)

const (
	RequestParamIndex     = "index"
	RequestParamQuery     = "q"
	RequestParamLimit     = "limit"
	RequestParamAvailable = "available"
	RequestFormLabel      = "label"
)

const (
	DefaultValueLimit = 10
	MaxValueLimit     = 50
)

const (
	CacheKeySession   = "session"
	CacheKeyRateLimit = "limiter"
	CacheKeySeparator = ":"
)

const (
	DateFormat = time.RFC3339
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelCacheScopeName      = "cache"
	OtelHTTPScopeName       = "http"
)

const (
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
	RequestHeaderCacheControl       = "Cache-Control"
)

const (
	ContentTypeJSON     = "application/json"
	ContentTypeHTML     = "text/html; charset=utf-8"
	CacheControlNoStore = "no-store"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
	ResponseHealthy                   = "OK"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Empty = ""
)
