package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . GitHub

import (
	"context"

	"github.com/m-mizutani/octodash/pkg/domain/model"
	"github.com/m-mizutani/octodash/pkg/domain/types"
)

// GitHub is the set of upstream calls the aggregation engine needs. The credential is
// forwarded on every call and never stored.
type GitHub interface {
	QueryViewerRepositories(ctx context.Context, token types.GitHubToken, input *QueryViewerRepositoriesInput) (*model.ViewerRepositoriesPage, error)
	ListUserRepositories(ctx context.Context, token types.GitHubToken, input *ListUserRepositoriesInput) ([]*model.Repository, error)
	ListWorkflows(ctx context.Context, token types.GitHubToken, owner, repo string) ([]*model.Workflow, error)
	ListWorkflowRuns(ctx context.Context, token types.GitHubToken, input *ListWorkflowRunsInput) ([]*model.WorkflowRun, error)
	GetRateLimit(ctx context.Context, token types.GitHubToken) (*model.RateLimit, error)
}

type QueryViewerRepositoriesInput struct {
	// Cursor is empty for the first page
	Cursor string
	// IncludeOrganizations adds the viewer's organizations and their repositories to the query
	IncludeOrganizations bool

	PageSize         int
	OrganizationSize int
	OrgRepoSize      int
}

type ListUserRepositoriesInput struct {
	Type    string
	Sort    string
	PerPage int
	Page    int
}

type ListWorkflowRunsInput struct {
	Owner   string
	Repo    string
	Status  types.RunStatus
	PerPage int
	Page    int
}
