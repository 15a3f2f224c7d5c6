package usecase

import (
	"time"

	"github.com/m-mizutani/octodash/pkg/domain/interfaces"
	"github.com/m-mizutani/octodash/pkg/domain/model"
	"github.com/m-mizutani/octodash/pkg/infra"
)

type UseCase struct {
	clients *infra.Clients

	probeBatchSize  int
	probeBatchDelay time.Duration
	runBatchSize    int
	runBatchDelay   time.Duration
	runsPerRepo     int
	restRepoLimit   int
	graphPageSize   int
	graphMaxPages   int
	orgLimit        int
	orgRepoLimit    int
	callTimeout     time.Duration
	durationWindow  time.Duration
	activeWindow    time.Duration
}

var _ interfaces.UseCase = (*UseCase)(nil)

type Option func(*UseCase)

// WithProbeBatch sets how many workflow probes of the REST fallback run at once and the pause between batches
func WithProbeBatch(size int, delay time.Duration) Option {
	return func(x *UseCase) {
		x.probeBatchSize = size
		x.probeBatchDelay = delay
	}
}

// WithRunBatch sets how many repositories are asked for runs at once and the pause between batches
func WithRunBatch(size int, delay time.Duration) Option {
	return func(x *UseCase) {
		x.runBatchSize = size
		x.runBatchDelay = delay
	}
}

func WithRunsPerRepo(n int) Option {
	return func(x *UseCase) {
		x.runsPerRepo = n
	}
}

func WithRESTRepoLimit(n int) Option {
	return func(x *UseCase) {
		x.restRepoLimit = n
	}
}

func WithGraphQLPages(pageSize, maxPages int) Option {
	return func(x *UseCase) {
		x.graphPageSize = pageSize
		x.graphMaxPages = maxPages
	}
}

// WithOrganizationLimit caps the organizations and the repositories per organization queried on the first GraphQL page
func WithOrganizationLimit(orgs, reposPerOrg int) Option {
	return func(x *UseCase) {
		x.orgLimit = orgs
		x.orgRepoLimit = reposPerOrg
	}
}

// WithCallTimeout bounds every single outbound call
func WithCallTimeout(d time.Duration) Option {
	return func(x *UseCase) {
		x.callTimeout = d
	}
}

func WithStatsWindows(duration, active time.Duration) Option {
	return func(x *UseCase) {
		x.durationWindow = duration
		x.activeWindow = active
	}
}

func New(clients *infra.Clients, options ...Option) *UseCase {
	uc := &UseCase{
		clients:         clients,
		probeBatchSize:  3,
		probeBatchDelay: 100 * time.Millisecond,
		runBatchSize:    5,
		runsPerRepo:     5,
		restRepoLimit:   20,
		graphPageSize:   100,
		graphMaxPages:   3,
		orgLimit:        20,
		orgRepoLimit:    20,
		callTimeout:     15 * time.Second,
		durationWindow:  model.DefaultDurationWindow,
		activeWindow:    model.DefaultActiveWindow,
	}

	for _, opt := range options {
		opt(uc)
	}

	return uc
}
