package middlewares

import (
	"log"
	"net/http"
	"runtime/debug"
)

// Recovery turns a handler panic into a 500. The stack and request id go to
// the log; the client only ever sees the generic status text.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}

			rid := GetRequestID(r)
			if rid == "" {
				rid = "unknown"
			}
			log.Printf("[PANIC] RequestID=%s %s %s: %v\n%s",
				rid, r.Method, r.URL.Path, v, debug.Stack())

			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}()
		next.ServeHTTP(w, r)
	})
}
