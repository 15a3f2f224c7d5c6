package model

import (
	"time"

	"github.com/m-mizutani/octodash/pkg/domain/types"
)

// Repository represents a GitHub repository visible to the authenticated user
type Repository struct {
	ID              types.GitHubRepoID `json:"id"`
	Name            string             `json:"name"`
	FullName        string             `json:"full_name"`
	Description     string             `json:"description,omitempty"`
	Private         bool               `json:"private"`
	HTMLURL         string             `json:"html_url"`
	UpdatedAt       time.Time          `json:"updated_at"`
	PushedAt        *time.Time         `json:"pushed_at"`
	Language        *string            `json:"language"`
	StargazersCount int                `json:"stargazers_count"`
	Owner           RepositoryOwner    `json:"owner"`
	HasActions      bool               `json:"has_actions"`
}

type RepositoryOwner struct {
	Login     string          `json:"login"`
	AvatarURL string          `json:"avatar_url"`
	Type      types.OwnerType `json:"type"`
}

// WithActions returns a copy of the repository marked as having workflows
func (x *Repository) WithActions() *Repository {
	copied := *x
	copied.HasActions = true
	return &copied
}

// Workflow is a workflow definition of a repository. Only used to probe whether
// a repository has GitHub Actions configured.
type Workflow struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Path  string `json:"path"`
	State string `json:"state"`
}

// ViewerRepositoriesPage is one page of the combined viewer/organization repository query.
// OrganizationRepositories is only filled for the first page.
type ViewerRepositoriesPage struct {
	Repositories             []*Repository
	OrganizationRepositories []*Repository
	HasNextPage              bool
	EndCursor                string
}
