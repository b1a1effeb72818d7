package api

import (
	"log"
	"net/http"
	"time"
)

// responseRecorder captures what the handler actually sent, so the request
// log reflects the response the player received rather than just that a
// handler ran.
type responseRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (rec *responseRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

func (rec *responseRecorder) Write(b []byte) (int, error) {
	// A body written without an explicit status is an implicit 200.
	if rec.status == 0 {
		rec.status = http.StatusOK
	}

	n, err := rec.ResponseWriter.Write(b)
	rec.bytes += n
	return n, err
}

// requestLogger emits one key=value line per request. The game id is included
// when it rides in the query string (game status polls); for POST actions it
// sits in the JSON body, and the engine logs those transitions itself.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rec := &responseRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, r)

		gameID := ""
		if id := r.URL.Query().Get("game_id"); id != "" {
			gameID = " game_id=" + id
		}
		log.Printf(
			"http method=%s path=%s%s status=%d bytes=%d dur=%dms",
			r.Method, r.URL.Path, gameID, rec.status, rec.bytes, time.Since(start).Milliseconds(),
		)
	})
}
