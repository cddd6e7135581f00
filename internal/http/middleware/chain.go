package middleware

import "net/http"

// Chain wraps h in the server's middleware. Request logging is outermost so
// recovered panics carry the request id and still get a completion line.
func Chain(h http.Handler, allowedOrigins []string) http.Handler {
	h = CORS(allowedOrigins)(h)
	h = Recovery()(h)
	return RequestLogging()(h)
}
