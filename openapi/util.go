package openapi

import (
	"errors"

	"github.com/danielgtaylor/huma/v2"

	"nkey.mleku.dev/lol"
)

type (
	bo = bool
	by = []byte
	st = string
	er = error
	no = int
)

var (
	chk = lol.Main.Check
)

// unprocessable turns a codec error into the 422 response the API gives for
// input that is well formed JSON but not a valid encoding.
func unprocessable(err er) er {
	var se huma.StatusError
	if errors.As(err, &se) {
		return err
	}
	return huma.Error422UnprocessableEntity(err.Error())
}
