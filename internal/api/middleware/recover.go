package middleware

import (
	"fmt"
	"net/http"
)

// errorWriter is the part of the error responder the recoverer needs. It is
// satisfied by api.ErrorResponder.
type errorWriter interface {
	Respond(w http.ResponseWriter, r *http.Request, err error)
}

// Recoverer converts a handler panic into a response through the central
// error responder instead of crashing the process. The recovered value is
// wrapped as an unclassified error, so clients see a generic 500 and the
// panic detail stays in the server logs (or the response body, in a
// non-production configuration).
func Recoverer(responder errorWriter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}
					responder.Respond(w, r, fmt.Errorf("panic: %v", rec))
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
