package openapi

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"

	"nkey.mleku.dev/log"
	"nkey.mleku.dev/servemux"
)

// LogMiddleware logs each operation with the remote address and how long it
// took.
func LogMiddleware(ctx huma.Context, next func(huma.Context)) {
	start := time.Now()
	r, _ := humago.Unwrap(ctx)
	next(ctx)
	log.D.F("%s %s from %s: %d in %v", ctx.Method(), ctx.URL().Path,
		r.RemoteAddr, ctx.Status(), time.Since(start))
}

// NewHuma creates a new huma.API with a Scalar docs UI at /api, and logging of
// the requests it handles.
func NewHuma(router *servemux.S, name, version, description string) (api huma.API) {
	config := huma.DefaultConfig(name, version)
	config.Info.Description = description
	config.DocsPath = ""
	router.ServeMux.HandleFunc("/api", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<!DOCTYPE html>
<html lang="en">
  <head>
    <title>nkey HTTP API UI</title>
    <meta charset="utf-8" />
    <meta
      name="viewport"
      content="width=device-width, initial-scale=1" />
  </head>
  <body>
    <script
      id="api-reference"
      data-url="/openapi.json"></script>
    <script src="https://cdn.jsdelivr.net/npm/@scalar/api-reference"></script>
  </body>
</html>`))
	})
	api = humago.New(router, config)
	api.UseMiddleware(LogMiddleware)
	return
}
