// Package openapi is the HTTP API of nkey: bech32 and NIP-19 encoding and
// decoding as JSON operations, described by an OpenAPI document.
package openapi

import (
	"github.com/danielgtaylor/huma/v2"

	"nkey.mleku.dev/servemux"
)

// Operations carries the Register methods of the API, each of which adds one
// operation under path.
type Operations struct {
	path string
}

// New creates the API on sm and registers all of its operations under path.
func New(name, version, description, path string, sm *servemux.S) (api huma.API) {
	api = NewHuma(sm, name, version, description)
	Register(api, path)
	return
}

// Register adds all the operations to api under path.
func Register(api huma.API, path string) {
	huma.AutoRegister(api, &Operations{path: path})
}
