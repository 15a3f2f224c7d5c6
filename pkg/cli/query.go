package cli

import (
	"context"
	"io"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/octodash/pkg/cli/config"
	"github.com/m-mizutani/octodash/pkg/domain/model"
	"github.com/m-mizutani/octodash/pkg/domain/types"
	"github.com/m-mizutani/octodash/pkg/infra"
	"github.com/m-mizutani/octodash/pkg/usecase"
	"github.com/m-mizutani/octodash/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// queryConfig is shared by the one-shot commands that print aggregated data
type queryConfig struct {
	github config.GitHub
	engine config.Engine
	format string
	output string
}

func (x *queryConfig) Flags() []cli.Flag {
	return slice.Flatten([]cli.Flag{
		&cli.StringFlag{
			Name:        "format",
			Usage:       "Output format [text|json]",
			Value:       formatText,
			Sources:     cli.EnvVars("OCTODASH_FORMAT"),
			Destination: &x.format,
		},
		&cli.StringFlag{
			Name:        "output",
			Usage:       "Output file path, '-' for stdout",
			Value:       "-",
			Destination: &x.output,
		},
	}, x.github.Flags(), x.engine.Flags())
}

func (x *queryConfig) setup(ctx context.Context) (*usecase.UseCase, types.GitHubToken, error) {
	if err := validateFormat(x.format); err != nil {
		return nil, "", err
	}
	token := x.github.Token()
	if token == "" {
		return nil, "", goerr.Wrap(types.ErrInvalidOption, "GitHub token is required (--github-token or OCTODASH_GITHUB_TOKEN)")
	}

	logging.From(ctx).Debug("query config",
		slog.Any("GitHub", x.github),
		slog.Any("Engine", x.engine),
	)

	client, err := x.github.NewClient()
	if err != nil {
		return nil, "", err
	}

	clients := infra.New(infra.WithGitHub(client))
	return usecase.New(clients, x.engine.Options()...), token, nil
}

func reposCommand() *cli.Command {
	var cfg queryConfig

	return &cli.Command{
		Name:  "repos",
		Usage: "List repositories that have GitHub Actions workflows",
		Flags: cfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, token, err := cfg.setup(ctx)
			if err != nil {
				return err
			}

			result, err := uc.DiscoverRepositories(ctx, token)
			if err != nil {
				return err
			}
			if result.PrimaryError != nil {
				logging.From(ctx).Warn("GraphQL discovery failed, REST fallback was used", slog.Any("error", result.PrimaryError))
			}

			return writeOutput(cfg.output, func(w io.Writer) error {
				if cfg.format == formatJSON {
					return writeJSON(w, map[string]any{
						"repositories": result.Repositories,
						"strategy":     result.Strategy,
					})
				}
				printRepositories(w, result)
				return nil
			})
		},
	}
}

func runsCommand() *cli.Command {
	var (
		cfg    queryConfig
		status string
		limit  int64
	)

	return &cli.Command{
		Name:  "runs",
		Usage: "List recent workflow runs across repositories, newest first",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "status",
				Usage:       "Filter by run status [queued|in_progress|completed]",
				Destination: &status,
			},
			&cli.Int64Flag{
				Name:        "limit",
				Usage:       "Maximum number of runs, 0 means no limit",
				Destination: &limit,
			},
		}, cfg.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, token, err := cfg.setup(ctx)
			if err != nil {
				return err
			}

			runs, err := uc.ListWorkflowRuns(ctx, token, &model.ListWorkflowRunsInput{
				Status: types.RunStatus(status),
				Limit:  int(limit),
			})
			if err != nil {
				return err
			}

			return writeOutput(cfg.output, func(w io.Writer) error {
				if cfg.format == formatJSON {
					return writeJSON(w, map[string]any{"workflow_runs": runs})
				}
				printRuns(w, runs, logging.CtxTime(ctx))
				return nil
			})
		},
	}
}

func statsCommand() *cli.Command {
	var (
		cfg     queryConfig
		perRepo bool
	)

	return &cli.Command{
		Name:  "stats",
		Usage: "Show workflow statistics across repositories",
		Flags: slice.Flatten([]cli.Flag{
			&cli.BoolFlag{
				Name:        "per-repo",
				Usage:       "Show statistics per repository",
				Destination: &perRepo,
			},
		}, cfg.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, token, err := cfg.setup(ctx)
			if err != nil {
				return err
			}

			if perRepo {
				stats, err := uc.GetRepositoryStats(ctx, token)
				if err != nil {
					return err
				}
				return writeOutput(cfg.output, func(w io.Writer) error {
					if cfg.format == formatJSON {
						return writeJSON(w, map[string]any{"repositories": stats})
					}
					printRepoStats(w, stats)
					return nil
				})
			}

			stats, err := uc.GetDashboardStats(ctx, token)
			if err != nil {
				return err
			}
			return writeOutput(cfg.output, func(w io.Writer) error {
				if cfg.format == formatJSON {
					return writeJSON(w, stats)
				}
				printStats(w, stats)
				return nil
			})
		},
	}
}

func rateLimitCommand() *cli.Command {
	var cfg queryConfig

	return &cli.Command{
		Name:  "rate-limit",
		Usage: "Show the remaining GitHub API quota of the token",
		Flags: cfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, token, err := cfg.setup(ctx)
			if err != nil {
				return err
			}

			limit, err := uc.GetRateLimit(ctx, token)
			if err != nil {
				return err
			}

			return writeOutput(cfg.output, func(w io.Writer) error {
				if cfg.format == formatJSON {
					return writeJSON(w, limit)
				}
				printRateLimit(w, limit)
				return nil
			})
		},
	}
}
