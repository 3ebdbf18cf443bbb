package middleware

import (
	"context"
	"net/http"
	"posada/config"
	"posada/shared/cache"
	"posada/shared/constant"
	"posada/transport/http/response"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// App bundles the request-scoped middleware that applies to every route.
type App interface {
	RequestID() func(http.Handler) http.Handler
	Recover() func(http.Handler) http.Handler
	RateLimit() func(http.Handler) http.Handler
}

type appMiddleware struct {
	config *config.Config
	cache  cache.RedisCache
}

func NewAppMiddleware(cfg *config.Config, redisCache cache.RedisCache) App {
	return &appMiddleware{
		config: cfg,
		cache:  redisCache,
	}
}

// RequestID tags every request with an id, honoring the one the client sent.
// The id is stamped on the response header before the handler runs so the
// response envelope can pick it up.
func (a *appMiddleware) RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(constant.RequestHeaderRequestID)
			if requestID == "" {
				requestID = "req_" + uuid.NewString()
			}

			w.Header().Set(constant.RequestHeaderRequestID, requestID)

			ctx := context.WithValue(r.Context(), constant.ContextKeyRequestID, requestID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Recover turns handler panics into a generic 500 instead of a dropped
// connection.
func (a *appMiddleware) Recover() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.Error().
						Interface("panic", rec).
						Str("path", r.URL.Path).
						Str("method", r.Method).
						Msg("Recovered from panic in handler")

					response.WithMessage(w, http.StatusInternalServerError, "An unexpected error occurred")
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
