package generate_link

import (
	"context"

	generateLink "github.com/Admin-dev32/Manna-Affiliate/internal/usecase/generate_link"
)

type GenerateLinkUseCase interface {
	Execute(ctx context.Context, req *generateLink.Request) (*generateLink.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
