package openapi

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"nkey.mleku.dev/context"
	"nkey.mleku.dev/ec/bech32"
	"nkey.mleku.dev/hex"
)

// EncodeInput is the human-readable part and hex payload to encode.
type EncodeInput struct {
	Body struct {
		HRP string `json:"hrp" doc:"human-readable part, lowercase letters" minLength:"1" maxLength:"83" example:"npub"`
		Hex string `json:"hex" doc:"payload in hex" minLength:"2" example:"3bf0c63fcb93463407af97a5e5ee64fa883d107ef9e558472c4eb9aaaefa459d"`
	}
}

// EncodeOutput is the bech32 string.
type EncodeOutput struct {
	Body struct {
		Encoded string `json:"encoded" doc:"bech32 encoding of the payload"`
	}
}

// RegisterEncode is the implementation of the Encode HTTP API method.
func (x *Operations) RegisterEncode(api huma.API) {
	name := "Encode"
	description := "Encode a payload of any length as bech32 under the given human-readable part. The result may be at most 90 characters."
	huma.Register(api, huma.Operation{
		OperationID: name,
		Summary:     name,
		Path:        x.path + "/encode",
		Method:      http.MethodPost,
		Tags:        []string{"bech32"},
		Description: description,
	}, func(ctx context.T, input *EncodeInput) (output *EncodeOutput, err error) {
		var payload by
		if payload, err = hex.Dec(input.Body.Hex); chk.D(err) {
			err = unprocessable(err)
			return
		}
		var encoded by
		if encoded, err = bech32.Encode(by(input.Body.HRP), payload); chk.D(err) {
			err = unprocessable(err)
			return
		}
		output = &EncodeOutput{}
		output.Body.Encoded = st(encoded)
		return
	})
}
