package middleware

import (
	"clockwise/config"
	"clockwise/infras/jwt"
	"clockwise/infras/otel"
	"clockwise/shared/constant"
	"clockwise/shared/failure"
	"clockwise/transport/http/response"
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Session binds every request to a browser session carried in a signed cookie.
type Session interface {
	Session(next http.Handler) http.Handler
}

type sessionImpl struct {
	jwtService jwt.JWT
	otel       otel.Otel
	cfg        *config.Config
}

func NewSessionMiddleware(jwtService jwt.JWT, otel otel.Otel, cfg *config.Config) Session {
	return &sessionImpl{
		jwtService: jwtService,
		otel:       otel,
		cfg:        cfg,
	}
}

// Session reuses the id from a valid cookie and otherwise starts a new session.
// The cookie has no Max-Age, so it ends with the browser session. Its token is
// reissued once half of its lifetime has passed, so only an idle session expires.
func (m *sessionImpl) Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "session.middleware")

		if claims, ok := m.fromCookie(request); ok {
			scope.SetAttribute("session.new", false)

			if m.jwtService.ShouldRenew(claims) {
				scope.SetAttribute("session.renewed", true)

				if err := m.issue(writer, claims.SessionID); err != nil {
					log.Warn().Err(err).Msg("failed to renew session token")
				}
			}

			scope.End()

			next.ServeHTTP(writer, request.WithContext(WithSessionID(ctx, claims.SessionID)))

			return
		}

		id := uuid.NewString()

		if err := m.issue(writer, id); err != nil {
			log.Error().Err(err).Msg("failed to issue session token")

			err = failure.InternalError(err)
			scope.TraceError(err)
			scope.End()

			response.WithError(writer, err)

			return
		}

		scope.SetAttribute("session.new", true)
		scope.End()

		next.ServeHTTP(writer, request.WithContext(WithSessionID(ctx, id)))
	})
}

func (m *sessionImpl) issue(writer http.ResponseWriter, id string) error {
	token, err := m.jwtService.GenerateSessionToken(id)
	if err != nil {
		return err
	}

	http.SetCookie(writer, &http.Cookie{
		Name:     m.cfg.Session.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   m.cfg.Session.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

func (m *sessionImpl) fromCookie(request *http.Request) (*jwt.Claims, bool) {
	cookie, err := request.Cookie(m.cfg.Session.CookieName)
	if err != nil || cookie.Value == "" {
		return nil, false
	}

	claims, err := m.jwtService.ValidateSessionToken(cookie.Value)
	if err != nil {
		log.Debug().Err(err).Msg("discarding invalid session cookie")

		return nil, false
	}

	return claims, true
}

// WithSessionID stores the session id on ctx.
func WithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, constant.ContextKeySessionID, id)
}

// SessionID returns the id set by the session middleware, or an empty string.
func SessionID(ctx context.Context) string {
	id, _ := ctx.Value(constant.ContextKeySessionID).(string)

	return id
}
