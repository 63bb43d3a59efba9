package payload

import "github.com/jellydator/validation"

type LoginRequest struct {
	Username string
	Password string
}

func (l LoginRequest) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Username, validation.Required),
		validation.Field(&l.Password, validation.Required),
	)
}
