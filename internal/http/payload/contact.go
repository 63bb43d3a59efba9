package payload

import (
	"portfolio/internal/core"

	"github.com/jellydator/validation"
	"github.com/jellydator/validation/is"
)

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (c ContactRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&c.Email, validation.Required, validation.Length(1, 255), is.EmailFormat),
		validation.Field(&c.Message, validation.Required),
	)
}

func (c ContactRequest) ToContactMessage() core.ContactMessage {
	return core.ContactMessage{
		Name:    c.Name,
		Email:   c.Email,
		Message: c.Message,
	}
}
