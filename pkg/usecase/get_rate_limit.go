package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octodash/pkg/domain/model"
	"github.com/m-mizutani/octodash/pkg/domain/types"
)

func (x *UseCase) GetRateLimit(ctx context.Context, token types.GitHubToken) (*model.RateLimit, error) {
	if token == "" {
		return nil, goerr.Wrap(types.ErrUnauthorized, "GitHub token is required")
	}
	if x.clients.GitHub() == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub client is not configured")
	}

	callCtx, cancel := x.withCallTimeout(ctx)
	defer cancel()

	limit, err := x.clients.GitHub().GetRateLimit(callCtx, token)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get rate limit")
	}
	return limit, nil
}
