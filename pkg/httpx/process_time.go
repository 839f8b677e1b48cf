package httpx

import (
	"net/http"
	"strconv"
	"time"
)

// ProcessTimeHeader is stamped on every response with the elapsed wall-clock
// seconds spent inside the middleware chain, formatted to four decimal places.
const ProcessTimeHeader = "X-Process-Time"

// ProcessTime wraps the rest of the pipeline and attaches the elapsed
// duration as a response header. The header is set immediately before the
// first WriteHeader/Write call, so it covers dependency resolution and
// handler execution on every exit path — error responses included.
//
// Must be the outermost middleware: panic recovery has to run inside it so
// that even a recovered 500 is written through the timing writer.
func ProcessTime(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tw := &timingWriter{ResponseWriter: w, start: time.Now()}
		next.ServeHTTP(tw, r)
	})
}

// timingWriter defers the header stamp until the response is committed.
// Headers cannot be modified after WriteHeader, so this is the last moment
// the elapsed time can be attached.
type timingWriter struct {
	http.ResponseWriter
	start     time.Time
	committed bool
}

func (t *timingWriter) WriteHeader(status int) {
	if !t.committed {
		t.committed = true
		elapsed := time.Since(t.start).Seconds()
		t.Header().Set(ProcessTimeHeader, strconv.FormatFloat(elapsed, 'f', 4, 64))
	}
	t.ResponseWriter.WriteHeader(status)
}

func (t *timingWriter) Write(b []byte) (int, error) {
	if !t.committed {
		t.WriteHeader(http.StatusOK)
	}
	return t.ResponseWriter.Write(b)
}

// Flush lets streaming handlers keep working through the wrapper.
func (t *timingWriter) Flush() {
	if f, ok := t.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}
