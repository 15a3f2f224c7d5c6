package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption     = goerr.New("invalid option")
	ErrUnauthorized      = goerr.New("unauthorized")
	ErrRateLimited       = goerr.New("rate limited")
	ErrInvalidGitHubData = goerr.New("invalid GitHub data")
)
