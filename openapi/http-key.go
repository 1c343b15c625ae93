package openapi

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"nkey.mleku.dev/bech32encoding"
	"nkey.mleku.dev/context"
)

// KeyEncodeInput is a 32 byte key or event id and the kind to encode it as.
type KeyEncodeInput struct {
	Body struct {
		Kind string `json:"kind" enum:"npub,nsec,note" doc:"NIP-19 kind"`
		Hex  string `json:"hex" doc:"32 byte key or event id in hex" minLength:"64" maxLength:"64"`
	}
}

// KeyEncodeOutput is the NIP-19 string, always 63 characters.
type KeyEncodeOutput struct {
	Body struct {
		Encoded string `json:"encoded" doc:"NIP-19 encoding of the key"`
	}
}

// RegisterKeyEncode is the implementation of the KeyEncode HTTP API method.
func (x *Operations) RegisterKeyEncode(api huma.API) {
	name := "KeyEncode"
	description := "Encode a 32 byte public key, secret key or event id as an npub, nsec or note."
	huma.Register(api, huma.Operation{
		OperationID: name,
		Summary:     name,
		Path:        x.path + "/key/encode",
		Method:      http.MethodPost,
		Tags:        []string{"nip-19"},
		Description: description,
	}, func(ctx context.T, input *KeyEncodeInput) (output *KeyEncodeOutput, err error) {
		var tag bech32encoding.Tag
		if tag, err = bech32encoding.ParseTag(input.Body.Kind); chk.D(err) {
			err = unprocessable(err)
			return
		}
		var encoded by
		if encoded, err = bech32encoding.HexToBech32(tag, input.Body.Hex); chk.D(err) {
			err = unprocessable(err)
			return
		}
		output = &KeyEncodeOutput{}
		output.Body.Encoded = st(encoded)
		return
	})
}

// KeyDecodeInput is an npub, nsec or note.
type KeyDecodeInput struct {
	Body struct {
		Encoded string `json:"encoded" doc:"npub, nsec or note" minLength:"63" maxLength:"63"`
	}
}

// KeyDecodeOutput is the kind and the 32 bytes a NIP-19 string carries.
type KeyDecodeOutput struct {
	Body struct {
		Kind string `json:"kind" doc:"NIP-19 kind"`
		Hex  string `json:"hex" doc:"32 byte key or event id in hex"`
	}
}

// RegisterKeyDecode is the implementation of the KeyDecode HTTP API method.
func (x *Operations) RegisterKeyDecode(api huma.API) {
	name := "KeyDecode"
	description := "Decode an npub, nsec or note into its kind and the 32 bytes it carries."
	huma.Register(api, huma.Operation{
		OperationID: name,
		Summary:     name,
		Path:        x.path + "/key/decode",
		Method:      http.MethodPost,
		Tags:        []string{"nip-19"},
		Description: description,
	}, func(ctx context.T, input *KeyDecodeInput) (output *KeyDecodeOutput, err error) {
		var tag bech32encoding.Tag
		var keyHex by
		if tag, keyHex, err = bech32encoding.Bech32ToHex(input.Body.Encoded); chk.D(err) {
			err = unprocessable(err)
			return
		}
		output = &KeyDecodeOutput{}
		output.Body.Kind = tag.String()
		output.Body.Hex = st(keyHex)
		return
	})
}
