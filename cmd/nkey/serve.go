package main

import (
	"errors"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"nkey.mleku.dev"
	"nkey.mleku.dev/chk"
	"nkey.mleku.dev/config"
	"nkey.mleku.dev/context"
	"nkey.mleku.dev/log"
	"nkey.mleku.dev/openapi"
	"nkey.mleku.dev/servemux"
)

// newHandler builds the API on a rate limited mux.
func newHandler(cfg *config.C) http.Handler {
	sm := servemux.New()
	sm.SetLimit(cfg.RateLimit, cfg.RateBurst)
	openapi.New(cfg.AppName, nkey.Version, nkey.Description, "", sm)
	return sm.Handler()
}

// serve runs the API until c is canceled, then shuts it down.
func serve(c context.T, cfg *config.C) (err error) {
	stop := cfg.StartProfiler()
	defer stop()
	var ln net.Listener
	if ln, err = net.Listen("tcp", cfg.Addr()); chk.E(err) {
		return
	}
	return serveOn(c, ln, newHandler(cfg))
}

func serveOn(c context.T, ln net.Listener, h http.Handler) (err error) {
	srv := &http.Server{
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
	}
	group, ctx := errgroup.WithContext(c)
	group.Go(func() (err error) {
		log.I.F("listening on http://%s", ln.Addr())
		if err = srv.Serve(ln); errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		return
	})
	group.Go(func() error {
		<-ctx.Done()
		log.I.Ln("shutting down")
		ctx, cancel := context.Timeout(context.Bg(), time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	})
	return group.Wait()
}
