package openapi

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"nkey.mleku.dev/context"
	"nkey.mleku.dev/ec/bech32"
	"nkey.mleku.dev/hex"
)

// DecodeInput is a bech32 string.
type DecodeInput struct {
	Body struct {
		Encoded string `json:"encoded" doc:"bech32 string, all lowercase or all uppercase" minLength:"1" maxLength:"90" example:"npub180cvv07tjdrrgpa0j7j7tmnyl2yr6yr7l8j4s3evf6u64th6gkwsyjh6w6"`
	}
}

// DecodeOutput is the lowercase human-readable part and the payload of a
// bech32 string.
type DecodeOutput struct {
	Body struct {
		HRP string `json:"hrp" doc:"human-readable part in lowercase"`
		Hex string `json:"hex" doc:"payload in hex"`
	}
}

// RegisterDecode is the implementation of the Decode HTTP API method.
func (x *Operations) RegisterDecode(api huma.API) {
	name := "Decode"
	description := "Decode a bech32 string into its human-readable part and payload. Any checksum, case, character or padding error is returned with status 422."
	huma.Register(api, huma.Operation{
		OperationID: name,
		Summary:     name,
		Path:        x.path + "/decode",
		Method:      http.MethodPost,
		Tags:        []string{"bech32"},
		Description: description,
	}, func(ctx context.T, input *DecodeInput) (output *DecodeOutput, err error) {
		var hrp, payload by
		if hrp, payload, err = bech32.Decode(input.Body.Encoded); chk.D(err) {
			err = unprocessable(err)
			return
		}
		output = &DecodeOutput{}
		output.Body.HRP = st(hrp)
		output.Body.Hex = hex.Enc(payload)
		return
	})
}
