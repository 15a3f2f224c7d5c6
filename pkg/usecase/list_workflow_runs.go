package usecase

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octodash/pkg/domain/interfaces"
	"github.com/m-mizutani/octodash/pkg/domain/model"
	"github.com/m-mizutani/octodash/pkg/domain/types"
	"github.com/m-mizutani/octodash/pkg/utils/logging"
)

// ListWorkflowRuns returns the recent workflow runs of every discovered repository, newest first.
// A repository whose runs cannot be fetched contributes no runs instead of failing the whole call.
func (x *UseCase) ListWorkflowRuns(ctx context.Context, token types.GitHubToken, input *model.ListWorkflowRunsInput) ([]*model.WorkflowRun, error) {
	if input == nil {
		input = &model.ListWorkflowRunsInput{}
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	discovery, err := x.DiscoverRepositories(ctx, token)
	if err != nil {
		return nil, err
	}

	runs, err := x.fetchRecentRuns(ctx, token, discovery.Repositories, input.Status)
	if err != nil {
		return nil, err
	}

	if input.Limit > 0 && len(runs) > input.Limit {
		runs = runs[:input.Limit]
	}

	return runs, nil
}

// fetchRecentRuns fans out run listing over repos and returns the merged runs sorted by created_at
// descending, ties broken by ID descending.
func (x *UseCase) fetchRecentRuns(ctx context.Context, token types.GitHubToken, repos []*model.Repository, status types.RunStatus) ([]*model.WorkflowRun, error) {
	logger := logging.From(ctx)
	gh := x.clients.GitHub()

	var mutex sync.Mutex
	var runs []*model.WorkflowRun
	var failed int

	err := runBatches(ctx, repos, x.runBatchSize, x.runBatchDelay, func(ctx context.Context, _ int, repo *model.Repository) error {
		callCtx, cancel := x.withCallTimeout(ctx)
		defer cancel()

		repoRuns, err := gh.ListWorkflowRuns(callCtx, token, &interfaces.ListWorkflowRunsInput{
			Owner:   repo.Owner.Login,
			Repo:    repo.Name,
			Status:  status,
			PerPage: x.runsPerRepo,
			Page:    1,
		})

		mutex.Lock()
		defer mutex.Unlock()

		if err != nil {
			failed++
			logger.Warn("Failed to fetch workflow runs",
				slog.String("repo", repo.FullName),
				slog.Any("error", err),
			)
			return nil
		}
		runs = append(runs, repoRuns...)
		return nil
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch workflow runs")
	}

	slices.SortFunc(runs, func(a, b *model.WorkflowRun) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})

	logger.Debug("Fetched workflow runs",
		slog.Int("repos", len(repos)),
		slog.Int("failed_repos", failed),
		slog.Int("runs", len(runs)),
	)

	return runs, nil
}
