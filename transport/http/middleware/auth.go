package middleware

import (
	"crypto/subtle"
	"net/http"
	"reservo/shared/constant"
	"reservo/shared/failure"
	"reservo/transport/http/response"
)

// APIKey rejects requests whose X-API-Key does not match APP_API_KEY. With no
// key configured every request passes.
func (a *appMiddleware) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		expected := a.config.App.APIKey
		if expected == "" {
			next.ServeHTTP(writer, request)

			return
		}

		_, scope := a.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "api_key.middleware")
		defer scope.End()

		given := request.Header.Get(constant.RequestHeaderAPIKey)
		if subtle.ConstantTimeCompare([]byte(given), []byte(expected)) != 1 {
			scope.TraceError(failure.ForbiddenError)
			response.WithError(writer, failure.ForbiddenError)

			return
		}

		next.ServeHTTP(writer, request)
	})
}
