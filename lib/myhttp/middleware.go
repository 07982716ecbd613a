package myhttp

import (
	"fmt"
	"net/http"
	"strconv"

	"golang.org/x/time/rate"

	"github.com/MarcGrol/signbackend/lib/mycontext"
	"github.com/MarcGrol/signbackend/lib/myerrors"
	"github.com/MarcGrol/signbackend/lib/mylog"
	"github.com/MarcGrol/signbackend/lib/myuuid"
)

// RequestID stores a fresh request id in the request context and echoes it in the X-Request-Id header.
func RequestID(uuider myuuid.UUIDer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get("X-Request-Id")
			if requestID == "" {
				requestID = uuider.Create()
			}
			w.Header().Set("X-Request-Id", requestID)

			next.ServeHTTP(w, r.WithContext(mycontext.WithRequestID(r.Context(), requestID)))
		})
	}
}

// RequestSizeLimit rejects requests whose Content-Length exceeds maxBytes and caps the body
// reader for requests that do not announce their size.
func RequestSizeLimit(logger mylog.Logger, maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Max-Request-Size", strconv.FormatInt(maxBytes, 10))

			if r.ContentLength > maxBytes {
				c := mycontext.ContextFromHTTPRequest(r)
				NewWriter(logger).WriteError(c, w, 1, myerrors.NewInvalidInputError(
					fmt.Errorf("request body size (%d bytes) exceeds maximum allowed size (%d bytes)", r.ContentLength, maxBytes)))
				return
			}

			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

			next.ServeHTTP(w, r)
		})
	}
}

// RateLimit limits requests per second. If requestsPerSecond <= 0, rate limiting is disabled.
func RateLimit(logger mylog.Logger, requestsPerSecond int, burst int) func(http.Handler) http.Handler {
	if requestsPerSecond <= 0 {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	limiter := rate.NewLimiter(rate.Limit(requestsPerSecond), burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				c := mycontext.ContextFromHTTPRequest(r)
				logger.Log(c, "", mylog.SeverityWarn, "Rate limit exceeded for %s", r.RemoteAddr)

				w.Header().Set("Retry-After", "1")
				NewWriter(logger).Write(c, w, http.StatusTooManyRequests, errorResponse{
					ErrorCode: 1,
					Message:   "too many requests, please try again later",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
