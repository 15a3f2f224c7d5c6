package githubapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octodash/pkg/domain/interfaces"
	"github.com/m-mizutani/octodash/pkg/domain/model"
	"github.com/m-mizutani/octodash/pkg/domain/types"
	"github.com/m-mizutani/octodash/pkg/utils/logging"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

type Client struct {
	baseURL    *url.URL
	graphQLURL string
	transport  http.RoundTripper
	limiter    *rate.Limiter
}

var _ interfaces.GitHub = (*Client)(nil)

type Option func(*Client)

// ParseBaseURL parses a REST API base URL. It must be an absolute http(s) URL.
func ParseBaseURL(baseURL string) (*url.URL, error) {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "invalid GitHub base URL",
			goerr.V("base_url", baseURL),
			goerr.V("error", err.Error()),
		)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub base URL must be an absolute http(s) URL",
			goerr.V("base_url", baseURL),
		)
	}
	return u, nil
}

// WithBaseURL sets the REST API base URL, e.g. https://ghe.example.com/api/v3/
// Values rejected by ParseBaseURL are ignored, so validate user input with it first.
func WithBaseURL(baseURL string) Option {
	return func(x *Client) {
		if u, err := ParseBaseURL(baseURL); err == nil {
			x.baseURL = u
		}
	}
}

// WithGraphQLURL sets the GraphQL endpoint. Relative values are resolved against the base URL.
func WithGraphQLURL(graphQLURL string) Option {
	return func(x *Client) {
		x.graphQLURL = graphQLURL
	}
}

func WithTransport(tr http.RoundTripper) Option {
	return func(x *Client) {
		x.transport = tr
	}
}

// WithRateLimit throttles every outbound call with a token bucket. rps <= 0 disables it.
func WithRateLimit(rps float64, burst int) Option {
	return func(x *Client) {
		if rps <= 0 {
			x.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		x.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

func New(options ...Option) *Client {
	client := &Client{
		graphQLURL: "graphql",
		transport:  http.DefaultTransport,
	}
	for _, opt := range options {
		opt(client)
	}
	return client
}

func (x *Client) buildGithubClient(token types.GitHubToken) (*github.Client, error) {
	if token == "" {
		return nil, goerr.Wrap(types.ErrUnauthorized, "GitHub token is empty")
	}

	httpClient := &http.Client{
		Transport: &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: string(token)}),
			Base:   x.transport,
		},
	}

	client := github.NewClient(httpClient)
	if x.baseURL != nil {
		client.BaseURL = x.baseURL
	}
	return client, nil
}

func (x *Client) wait(ctx context.Context) error {
	if x.limiter == nil {
		return nil
	}
	if err := x.limiter.Wait(ctx); err != nil {
		return goerr.Wrap(err, "failed to wait for rate limiter")
	}
	return nil
}

// wrapError tags quota exhaustion with types.ErrRateLimited so that callers can tell it apart.
func wrapError(err error, msg string, values ...goerr.Option) error {
	var rateErr *github.RateLimitError
	var abuseErr *github.AbuseRateLimitError
	var respErr *github.ErrorResponse

	switch {
	case errors.As(err, &rateErr), errors.As(err, &abuseErr):
		return goerr.Wrap(types.ErrRateLimited, msg, append(values, goerr.V("error", err.Error()))...)
	case errors.As(err, &respErr) && respErr.Response != nil:
		switch respErr.Response.StatusCode {
		case http.StatusForbidden, http.StatusTooManyRequests:
			return goerr.Wrap(types.ErrRateLimited, msg, append(values, goerr.V("error", err.Error()))...)
		case http.StatusUnauthorized:
			return goerr.Wrap(types.ErrUnauthorized, msg, append(values, goerr.V("error", err.Error()))...)
		}
	}

	return goerr.Wrap(err, msg, values...)
}

func (x *Client) ListUserRepositories(ctx context.Context, token types.GitHubToken, input *interfaces.ListUserRepositoriesInput) ([]*model.Repository, error) {
	client, err := x.buildGithubClient(token)
	if err != nil {
		return nil, err
	}
	if err := x.wait(ctx); err != nil {
		return nil, err
	}

	opt := &github.RepositoryListOptions{
		Type: input.Type,
		Sort: input.Sort,
		ListOptions: github.ListOptions{
			PerPage: input.PerPage,
			Page:    input.Page,
		},
	}

	// empty user lists the repositories of the authenticated user
	repos, _, err := client.Repositories.List(ctx, "", opt)
	if err != nil {
		return nil, wrapError(err, "failed to list user repositories", goerr.V("input", input))
	}

	result := make([]*model.Repository, 0, len(repos))
	for _, repo := range repos {
		result = append(result, repositoryFromREST(repo))
	}

	logging.From(ctx).Debug("Listed user repositories", slog.Int("count", len(result)))

	return result, nil
}

func (x *Client) ListWorkflows(ctx context.Context, token types.GitHubToken, owner, repo string) ([]*model.Workflow, error) {
	client, err := x.buildGithubClient(token)
	if err != nil {
		return nil, err
	}
	if err := x.wait(ctx); err != nil {
		return nil, err
	}

	resp, _, err := client.Actions.ListWorkflows(ctx, owner, repo, &github.ListOptions{PerPage: 100})
	if err != nil {
		return nil, wrapError(err, "failed to list workflows",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
		)
	}

	workflows := make([]*model.Workflow, 0, len(resp.Workflows))
	for _, wf := range resp.Workflows {
		workflows = append(workflows, &model.Workflow{
			ID:    wf.GetID(),
			Name:  wf.GetName(),
			Path:  wf.GetPath(),
			State: wf.GetState(),
		})
	}

	return workflows, nil
}

func (x *Client) ListWorkflowRuns(ctx context.Context, token types.GitHubToken, input *interfaces.ListWorkflowRunsInput) ([]*model.WorkflowRun, error) {
	client, err := x.buildGithubClient(token)
	if err != nil {
		return nil, err
	}
	if err := x.wait(ctx); err != nil {
		return nil, err
	}

	opt := &github.ListWorkflowRunsOptions{
		Status: string(input.Status),
		ListOptions: github.ListOptions{
			PerPage: input.PerPage,
			Page:    input.Page,
		},
	}

	resp, _, err := client.Actions.ListRepositoryWorkflowRuns(ctx, input.Owner, input.Repo, opt)
	if err != nil {
		return nil, wrapError(err, "failed to list workflow runs",
			goerr.V("owner", input.Owner),
			goerr.V("repo", input.Repo),
		)
	}

	runs := make([]*model.WorkflowRun, 0, len(resp.WorkflowRuns))
	for _, r := range resp.WorkflowRuns {
		run := workflowRunFromREST(r)
		if err := run.Validate(); err != nil {
			logging.From(ctx).Debug("Skip malformed workflow run",
				slog.String("repo", run.Repository.FullName),
				slog.Any("error", err),
			)
			continue
		}
		runs = append(runs, run)
	}

	return runs, nil
}

func (x *Client) GetRateLimit(ctx context.Context, token types.GitHubToken) (*model.RateLimit, error) {
	client, err := x.buildGithubClient(token)
	if err != nil {
		return nil, err
	}

	limits, _, err := client.RateLimits(ctx)
	if err != nil {
		return nil, wrapError(err, "failed to get rate limit")
	}

	core := limits.GetCore()
	if core == nil {
		return nil, goerr.Wrap(types.ErrInvalidGitHubData, "core rate limit is missing")
	}

	return &model.RateLimit{
		Limit:     core.Limit,
		Remaining: core.Remaining,
		Reset:     core.Reset.Unix(),
		Used:      core.Limit - core.Remaining,
	}, nil
}
