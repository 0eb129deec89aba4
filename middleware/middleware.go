package middleware

import (
	"net/http"

	dprequest "github.com/ONSdigital/dp-net/request"
	"github.com/ONSdigital/log.go/v2/log"
	"github.com/google/uuid"
)

// RequestID ensures every request carries an identifier. An incoming
// X-Request-Id header is kept, otherwise one is generated, and either way the
// identifier is stored on the request context for downstream log events.
func RequestID(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		requestID := req.Header.Get(dprequest.RequestHeaderKey)
		if requestID == "" {
			requestID = uuid.New().String()
			req.Header.Set(dprequest.RequestHeaderKey, requestID)
		}

		h.ServeHTTP(w, req.WithContext(dprequest.WithRequestId(req.Context(), requestID)))
	})
}

// AccessLog writes a structured event for each request served.
func AccessLog(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		log.Info(req.Context(), "request received", log.Data{
			"method": req.Method,
			"path":   req.URL.Path,
		})

		h.ServeHTTP(w, req)
	})
}
