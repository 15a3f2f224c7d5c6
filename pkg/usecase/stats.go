package usecase

import (
	"context"

	"github.com/m-mizutani/octodash/pkg/domain/model"
	"github.com/m-mizutani/octodash/pkg/domain/types"
	"github.com/m-mizutani/octodash/pkg/utils/logging"
)

// GetDashboardStats summarizes recent runs of all discovered repositories
func (x *UseCase) GetDashboardStats(ctx context.Context, token types.GitHubToken) (*model.DashboardStats, error) {
	discovery, err := x.DiscoverRepositories(ctx, token)
	if err != nil {
		return nil, err
	}

	runs, err := x.fetchRecentRuns(ctx, token, discovery.Repositories, "")
	if err != nil {
		return nil, err
	}

	stats := model.NewWorkflowStats(runs, len(discovery.Repositories), logging.CtxTime(ctx),
		model.WithDurationWindow(x.durationWindow),
		model.WithActiveWindow(x.activeWindow),
	)

	return &model.DashboardStats{
		Strategy: discovery.Strategy,
		Stats:    stats,
	}, nil
}

// GetRepositoryStats returns per repository stats in the order the repositories were discovered
func (x *UseCase) GetRepositoryStats(ctx context.Context, token types.GitHubToken) ([]*model.RepoWorkflowStats, error) {
	discovery, err := x.DiscoverRepositories(ctx, token)
	if err != nil {
		return nil, err
	}

	runs, err := x.fetchRecentRuns(ctx, token, discovery.Repositories, "")
	if err != nil {
		return nil, err
	}

	grouped := model.GroupRunsByRepository(runs)
	result := make([]*model.RepoWorkflowStats, 0, len(discovery.Repositories))
	for _, repo := range discovery.Repositories {
		result = append(result, model.NewRepoWorkflowStats(grouped[repo.FullName], repo.FullName))
	}

	return result, nil
}
