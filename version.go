// Package nkey is a bech32 codec with fixed length NIP-19 key encodings, and
// the command line tool and HTTP API that serve it.
package nkey

const (
	// Version is the release of the module.
	Version = "v0.1.0"
	// URL is where the source lives.
	URL = "https://nkey.mleku.dev"
	// Description is the one line summary shown by the tool and the API.
	Description = "bech32 and NIP-19 npub/nsec/note encoder and decoder"
)
