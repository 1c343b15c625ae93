// Package servemux is the http.ServeMux the API is served from, with an
// optional request rate limit and CORS handling.
package servemux

import (
	"net/http"

	"github.com/rs/cors"
	"golang.org/x/time/rate"

	"nkey.mleku.dev/log"
)

type S struct {
	*http.ServeMux
	limiter *rate.Limiter
}

func New() *S {
	return &S{ServeMux: http.NewServeMux()}
}

// SetLimit limits the mux to rps requests per second with bursts of up to
// burst requests. A rate that is not positive removes the limit. It must be
// called before serving.
func (c *S) SetLimit(rps float64, burst int) {
	if rps <= 0 {
		c.limiter = nil
		return
	}
	if burst < 1 {
		burst = 1
	}
	c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
}

func (c *S) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if c.limiter != nil && !c.limiter.Allow() {
		log.D.F("rate limited %s %s from %s", r.Method, r.URL.Path, r.RemoteAddr)
		http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
		return
	}
	c.ServeMux.ServeHTTP(w, r)
}

// Handler is the mux behind a CORS handler that allows any origin.
func (c *S) Handler() http.Handler { return cors.Default().Handler(c) }
