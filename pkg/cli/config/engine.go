package config

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/octodash/pkg/domain/model"
	"github.com/m-mizutani/octodash/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// Engine holds tuning knobs of repository discovery and run aggregation
type Engine struct {
	probeBatchSize  int64
	probeBatchDelay time.Duration
	runBatchSize    int64
	runBatchDelay   time.Duration
	runsPerRepo     int64
	restRepoLimit   int64
	graphPageSize   int64
	graphMaxPages   int64
	orgLimit        int64
	orgRepoLimit    int64
	callTimeout     time.Duration
	durationWindow  time.Duration
	activeWindow    time.Duration
}

func (x *Engine) Flags() []cli.Flag {
	const category = "Engine"
	return []cli.Flag{
		&cli.Int64Flag{
			Name:        "probe-batch-size",
			Usage:       "Number of concurrent workflow probes in REST fallback discovery",
			Category:    category,
			Value:       3,
			Destination: &x.probeBatchSize,
			Sources:     cli.EnvVars("OCTODASH_PROBE_BATCH_SIZE"),
		},
		&cli.DurationFlag{
			Name:        "probe-batch-delay",
			Usage:       "Pause between workflow probe batches",
			Category:    category,
			Value:       100 * time.Millisecond,
			Destination: &x.probeBatchDelay,
			Sources:     cli.EnvVars("OCTODASH_PROBE_BATCH_DELAY"),
		},
		&cli.Int64Flag{
			Name:        "run-batch-size",
			Usage:       "Number of repositories whose runs are fetched concurrently",
			Category:    category,
			Value:       5,
			Destination: &x.runBatchSize,
			Sources:     cli.EnvVars("OCTODASH_RUN_BATCH_SIZE"),
		},
		&cli.DurationFlag{
			Name:        "run-batch-delay",
			Usage:       "Pause between run fetch batches",
			Category:    category,
			Destination: &x.runBatchDelay,
			Sources:     cli.EnvVars("OCTODASH_RUN_BATCH_DELAY"),
		},
		&cli.Int64Flag{
			Name:        "runs-per-repo",
			Usage:       "Number of recent runs fetched per repository",
			Category:    category,
			Value:       5,
			Destination: &x.runsPerRepo,
			Sources:     cli.EnvVars("OCTODASH_RUNS_PER_REPO"),
		},
		&cli.Int64Flag{
			Name:        "rest-repo-limit",
			Usage:       "Number of repositories listed by REST fallback discovery",
			Category:    category,
			Value:       20,
			Destination: &x.restRepoLimit,
			Sources:     cli.EnvVars("OCTODASH_REST_REPO_LIMIT"),
		},
		&cli.Int64Flag{
			Name:        "graphql-page-size",
			Usage:       "Repositories per GraphQL page",
			Category:    category,
			Value:       100,
			Destination: &x.graphPageSize,
			Sources:     cli.EnvVars("OCTODASH_GRAPHQL_PAGE_SIZE"),
		},
		&cli.Int64Flag{
			Name:        "graphql-max-pages",
			Usage:       "Maximum GraphQL pages per discovery",
			Category:    category,
			Value:       3,
			Destination: &x.graphMaxPages,
			Sources:     cli.EnvVars("OCTODASH_GRAPHQL_MAX_PAGES"),
		},
		&cli.Int64Flag{
			Name:        "org-limit",
			Usage:       "Organizations queried on the first GraphQL page",
			Category:    category,
			Value:       20,
			Destination: &x.orgLimit,
			Sources:     cli.EnvVars("OCTODASH_ORG_LIMIT"),
		},
		&cli.Int64Flag{
			Name:        "org-repo-limit",
			Usage:       "Repositories queried per organization",
			Category:    category,
			Value:       20,
			Destination: &x.orgRepoLimit,
			Sources:     cli.EnvVars("OCTODASH_ORG_REPO_LIMIT"),
		},
		&cli.DurationFlag{
			Name:        "call-timeout",
			Usage:       "Timeout of each GitHub API call",
			Category:    category,
			Value:       15 * time.Second,
			Destination: &x.callTimeout,
			Sources:     cli.EnvVars("OCTODASH_CALL_TIMEOUT"),
		},
		&cli.DurationFlag{
			Name:        "duration-window",
			Usage:       "Trailing window of runs used for average duration",
			Category:    category,
			Value:       model.DefaultDurationWindow,
			Destination: &x.durationWindow,
			Sources:     cli.EnvVars("OCTODASH_DURATION_WINDOW"),
		},
		&cli.DurationFlag{
			Name:        "active-window",
			Usage:       "Trailing window of runs counted as recently active",
			Category:    category,
			Value:       model.DefaultActiveWindow,
			Destination: &x.activeWindow,
			Sources:     cli.EnvVars("OCTODASH_ACTIVE_WINDOW"),
		},
	}
}

func (x *Engine) Options() []usecase.Option {
	return []usecase.Option{
		usecase.WithProbeBatch(int(x.probeBatchSize), x.probeBatchDelay),
		usecase.WithRunBatch(int(x.runBatchSize), x.runBatchDelay),
		usecase.WithRunsPerRepo(int(x.runsPerRepo)),
		usecase.WithRESTRepoLimit(int(x.restRepoLimit)),
		usecase.WithGraphQLPages(int(x.graphPageSize), int(x.graphMaxPages)),
		usecase.WithOrganizationLimit(int(x.orgLimit), int(x.orgRepoLimit)),
		usecase.WithCallTimeout(x.callTimeout),
		usecase.WithStatsWindows(x.durationWindow, x.activeWindow),
	}
}

func (x Engine) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("ProbeBatchSize", x.probeBatchSize),
		slog.Duration("ProbeBatchDelay", x.probeBatchDelay),
		slog.Int64("RunBatchSize", x.runBatchSize),
		slog.Duration("RunBatchDelay", x.runBatchDelay),
		slog.Int64("RunsPerRepo", x.runsPerRepo),
		slog.Int64("GraphQLMaxPages", x.graphMaxPages),
		slog.Duration("CallTimeout", x.callTimeout),
	)
}
