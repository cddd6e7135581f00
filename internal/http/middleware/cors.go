package middleware

import (
	"net/http"
	"strings"
)

// CORS returns middleware that sets common CORS headers for the configured
// origins. With no origins CORS headers are not applied. The special value "*"
// allows any origin.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	var (
		anyOrigin bool
		origins   = make(map[string]struct{}, len(allowedOrigins))
	)
	for _, o := range allowedOrigins {
		o = strings.ToLower(strings.TrimSpace(o))
		switch o {
		case "":
		case "*":
			anyOrigin = true
		default:
			origins[o] = struct{}{}
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestOrigin := r.Header.Get("Origin")
			_, listed := origins[strings.ToLower(requestOrigin)]

			switch {
			case anyOrigin:
				w.Header().Set("Access-Control-Allow-Origin", "*")
				w.Header().Set("Access-Control-Allow-Credentials", "false")
				setCommonHeaders(w)
			case requestOrigin != "" && listed:
				w.Header().Set("Access-Control-Allow-Origin", requestOrigin)
				w.Header().Set("Vary", "Origin")
				w.Header().Set("Access-Control-Allow-Credentials", "true")
				setCommonHeaders(w)
			}

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func setCommonHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Methods", "GET,POST,DELETE,OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Accept, X-Request-ID")
	w.Header().Set("Access-Control-Max-Age", "3600")
}
