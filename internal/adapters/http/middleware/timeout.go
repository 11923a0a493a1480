package middleware

import (
	"context"
	"errors"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/CodeJamboree/action-builder/internal/adapters/http/dto"
)

var errDeadline = errors.New("request exceeded its deadline")

// Timeout gives every request a deadline. The handler runs on its own
// goroutine writing into a buffer; whichever of the handler or the deadline
// finishes first decides the response, and a deadline produces a 504
// problem response. A panic in the handler is re-raised on the serving
// goroutine so Recovery still sees it.
func Timeout(d time.Duration) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()
			r = r.WithContext(ctx)

			bw := &bufferedWriter{header: make(http.Header)}
			done := make(chan struct{})
			panicked := make(chan any, 1)
			go func() {
				defer func() {
					if p := recover(); p != nil {
						panicked <- p
						return
					}
					close(done)
				}()
				next.ServeHTTP(bw, r)
			}()

			select {
			case p := <-panicked:
				panic(p)
			case <-done:
				if bw.empty() && errors.Is(ctx.Err(), context.DeadlineExceeded) {
					dto.WriteProblem(w, r, http.StatusGatewayTimeout, errDeadline)
					return
				}
				bw.flushTo(w)
			case <-ctx.Done():
				bw.mu.Lock()
				defer bw.mu.Unlock()
				bw.timedOut = true
				if errors.Is(ctx.Err(), context.DeadlineExceeded) {
					dto.WriteProblem(w, r, http.StatusGatewayTimeout, errDeadline)
				}
			}
		})
	}
}

// bufferedWriter holds the handler's response until Timeout decides to send
// it. Writes after a timeout are discarded.
type bufferedWriter struct {
	mu       sync.Mutex
	header   http.Header
	status   int
	body     []byte
	timedOut bool
}

func (bw *bufferedWriter) Header() http.Header {
	return bw.header
}

func (bw *bufferedWriter) WriteHeader(code int) {
	bw.mu.Lock()
	defer bw.mu.Unlock()
	if bw.status == 0 {
		bw.status = code
	}
}

func (bw *bufferedWriter) Write(b []byte) (int, error) {
	bw.mu.Lock()
	defer bw.mu.Unlock()
	if bw.timedOut {
		return 0, http.ErrHandlerTimeout
	}
	if bw.status == 0 {
		bw.status = http.StatusOK
	}
	bw.body = append(bw.body, b...)
	return len(b), nil
}

func (bw *bufferedWriter) empty() bool {
	bw.mu.Lock()
	defer bw.mu.Unlock()
	return bw.status == 0
}

func (bw *bufferedWriter) flushTo(w http.ResponseWriter) {
	bw.mu.Lock()
	defer bw.mu.Unlock()

	maps.Copy(w.Header(), bw.header)
	if bw.status != 0 {
		w.WriteHeader(bw.status)
	}
	if len(bw.body) > 0 {
		_, _ = w.Write(bw.body)
	}
}
