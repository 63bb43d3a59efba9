package handler

import (
	"context"
	"net/http"
	"portfolio/internal/core"
	"portfolio/internal/http/payload"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name PortfolioService . PortfolioService
type PortfolioService interface {
	Authenticate(ctx context.Context, username, password string) (core.Account, error)
	SubmitMessage(ctx context.Context, msg core.ContactMessage) (uint, error)
	ListMessages(ctx context.Context) ([]core.MessageRecord, error)
	DeleteMessage(ctx context.Context, id uint) (bool, error)
}

//counterfeiter:generate -o fake -fake-name RequestDecoder . RequestDecoder
type RequestDecoder interface {
	DecodeJSONPayload(r *http.Request, object any) error
	DecodeFormPayload(r *http.Request, object *payload.LoginRequest) error
}
