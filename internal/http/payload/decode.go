package payload

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

const maxBodyBytes = 64 << 10

// Decoder decodes request bodies into payloads and validates them.
type Decoder struct{}

func (d Decoder) DecodeJSONPayload(r *http.Request, object any) error {
	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	defer r.Body.Close()

	decoder.DisallowUnknownFields()

	if err := decoder.Decode(object); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("decoding json payload: empty body")
		}
		return fmt.Errorf("decoding json payload: %w", err)
	}

	return validatePayload(object)
}

// DecodeFormPayload fills a LoginRequest from an url-encoded form.
func (d Decoder) DecodeFormPayload(r *http.Request, object *LoginRequest) error {
	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("parsing form payload: %w", err)
	}

	object.Username = r.PostFormValue("username")
	object.Password = r.PostFormValue("password")

	return validatePayload(object)
}
