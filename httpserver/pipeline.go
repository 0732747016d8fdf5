package httpserver

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"net/http"
	"runtime/debug"
	"sync"
	"time"

	"github.com/ruteri/fee-recipient-registry/metrics"
	"go.uber.org/atomic"
	"golang.org/x/sync/semaphore"
)

// Pipeline wraps handlers with panic recovery, admission control with load
// shedding, and a per-request timeout, in that order from the outside in.
//
// A request is admitted or shed; an admitted request either completes or
// times out. Shed requests get 503, timed out requests get 408 and panics
// get 500, all through WritePipelineError.
type Pipeline struct {
	log     *slog.Logger
	metrics *metrics.Metrics

	maxInFlight int64
	admission   *semaphore.Weighted
	inFlight    atomic.Int64
	timeout     time.Duration
}

func NewPipeline(log *slog.Logger, m *metrics.Metrics, maxInFlight int64, timeout time.Duration) *Pipeline {
	return &Pipeline{
		log:         log,
		metrics:     m,
		maxInFlight: maxInFlight,
		admission:   semaphore.NewWeighted(maxInFlight),
		timeout:     timeout,
	}
}

// Wrap applies the whole pipeline to next.
func (p *Pipeline) Wrap(next http.Handler) http.Handler {
	return p.Recoverer(p.LoadShedder(p.Timeout(next)))
}

// InFlight returns the number of currently admitted requests.
func (p *Pipeline) InFlight() int64 {
	return p.inFlight.Load()
}

// Saturated reports whether the next request would be shed.
func (p *Pipeline) Saturated() bool {
	return p.inFlight.Load() >= p.maxInFlight
}

// handlerPanic carries a panic out of the timeout goroutine together with
// the stack where it happened.
type handlerPanic struct {
	value any
	stack []byte
}

// Recoverer turns panics into 500 responses. The response only carries the
// panic value; the stack goes to the log.
func (p *Pipeline) Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			stack := debug.Stack()
			if hp, ok := rec.(*handlerPanic); ok {
				rec, stack = hp.value, hp.stack
			}

			p.metrics.ObserveOutcome(metrics.OutcomePanicked)
			p.log.Error("Handler panicked", "panic", rec, "method", r.Method, "path", r.URL.Path, "stack", string(stack))
			WritePipelineError(w, &InternalError{Err: fmt.Errorf("%v", rec)})
		}()

		next.ServeHTTP(w, r)
	})
}

// LoadShedder admits at most maxInFlight concurrent requests and fails the
// rest immediately instead of queueing them.
func (p *Pipeline) LoadShedder(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !p.admission.TryAcquire(1) {
			p.metrics.ObserveOutcome(metrics.OutcomeShed)
			p.log.Warn("Request shed", "method", r.Method, "path", r.URL.Path, "inFlight", p.inFlight.Load())
			WritePipelineError(w, ErrOverloaded)
			return
		}
		p.metrics.SetInFlight(p.inFlight.Inc())
		defer func() {
			p.metrics.SetInFlight(p.inFlight.Dec())
			p.admission.Release(1)
		}()

		next.ServeHTTP(w, r)
	})
}

// Timeout bounds the handler by the pipeline timeout. The handler writes to a
// buffer; on expiry the client gets 408 and anything the handler writes
// later is dropped. Work the handler already committed is not undone.
// The admission slot is freed when the 408 is sent, so the LoadShedder limit
// counts requests not yet answered, not handler goroutines still running.
func (p *Pipeline) Timeout(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), p.timeout)
		defer cancel()
		r = r.WithContext(ctx)

		done := make(chan struct{})
		panicChan := make(chan *handlerPanic, 1)
		tw := &timeoutWriter{h: make(http.Header)}

		go func() {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panicChan <- &handlerPanic{value: rec}
						return
					}
					panicChan <- &handlerPanic{value: rec, stack: debug.Stack()}
					return
				}
				close(done)
			}()
			next.ServeHTTP(tw, r)
		}()

		select {
		case hp := <-panicChan:
			if hp.value == http.ErrAbortHandler {
				panic(hp.value)
			}
			panic(hp)

		case <-done:
			tw.mu.Lock()
			defer tw.mu.Unlock()

			maps.Copy(w.Header(), tw.h)
			if !tw.wroteHeader {
				tw.code = http.StatusOK
			}
			w.WriteHeader(tw.code)
			if _, err := w.Write(tw.wbuf.Bytes()); err != nil {
				p.log.Debug("Failed to write response", "err", err)
			}
			p.metrics.ObserveOutcome(metrics.OutcomeCompleted)

		case <-ctx.Done():
			tw.mu.Lock()
			defer tw.mu.Unlock()
			tw.timedOut = true

			if !errors.Is(ctx.Err(), context.DeadlineExceeded) {
				// The client went away; there is nobody to answer.
				p.metrics.ObserveOutcome(metrics.OutcomeCanceled)
				return
			}

			p.metrics.ObserveOutcome(metrics.OutcomeTimedOut)
			p.log.Warn("Request timed out", "method", r.Method, "path", r.URL.Path, "timeout", p.timeout)
			WritePipelineError(w, ErrTimeout)
		}
	})
}

// timeoutWriter buffers a handler's response until the Timeout middleware
// decides whether it may be sent.
type timeoutWriter struct {
	h    http.Header
	wbuf bytes.Buffer

	mu          sync.Mutex
	timedOut    bool
	wroteHeader bool
	code        int
}

func (tw *timeoutWriter) Header() http.Header { return tw.h }

func (tw *timeoutWriter) Write(p []byte) (int, error) {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.timedOut {
		return 0, http.ErrHandlerTimeout
	}
	if !tw.wroteHeader {
		tw.writeHeaderLocked(http.StatusOK)
	}
	return tw.wbuf.Write(p)
}

func (tw *timeoutWriter) WriteHeader(code int) {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.timedOut || tw.wroteHeader {
		return
	}
	tw.writeHeaderLocked(code)
}

func (tw *timeoutWriter) writeHeaderLocked(code int) {
	tw.wroteHeader = true
	tw.code = code
}
