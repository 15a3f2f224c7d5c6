package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/m-mizutani/octodash/pkg/domain/model"
	"github.com/m-mizutani/octodash/pkg/domain/types"
)

type UseCase interface {
	DiscoverRepositories(ctx context.Context, token types.GitHubToken) (*model.DiscoveryResult, error)
	ListWorkflowRuns(ctx context.Context, token types.GitHubToken, input *model.ListWorkflowRunsInput) ([]*model.WorkflowRun, error)
	GetRateLimit(ctx context.Context, token types.GitHubToken) (*model.RateLimit, error)
	GetDashboardStats(ctx context.Context, token types.GitHubToken) (*model.DashboardStats, error)
	GetRepositoryStats(ctx context.Context, token types.GitHubToken) ([]*model.RepoWorkflowStats, error)
}
