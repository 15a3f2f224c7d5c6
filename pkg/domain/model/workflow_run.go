package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octodash/pkg/domain/types"
)

type WorkflowRun struct {
	ID           int64               `json:"id"`
	Name         string              `json:"name"`
	HeadBranch   string              `json:"head_branch"`
	HeadSHA      string              `json:"head_sha"`
	Status       types.RunStatus     `json:"status"`
	Conclusion   types.RunConclusion `json:"conclusion"`
	WorkflowID   int64               `json:"workflow_id"`
	HTMLURL      string              `json:"html_url"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
	RunStartedAt *time.Time          `json:"run_started_at"`
	RunNumber    int                 `json:"run_number"`
	Event        string              `json:"event"`
	Repository   RunRepository       `json:"repository"`
	HeadCommit   HeadCommit          `json:"head_commit"`
	Actor        Actor               `json:"actor"`
}

type RunRepository struct {
	Name     string `json:"name"`
	FullName string `json:"full_name"`
}

type HeadCommit struct {
	Message string       `json:"message"`
	Author  CommitAuthor `json:"author"`
}

type CommitAuthor struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Actor struct {
	Login     string `json:"login"`
	AvatarURL string `json:"avatar_url"`
}

// Validate checks that conclusion is set if and only if the run is completed.
func (x *WorkflowRun) Validate() error {
	if !x.Status.Valid() {
		return goerr.Wrap(types.ErrInvalidGitHubData, "invalid run status",
			goerr.V("id", x.ID),
			goerr.V("status", x.Status),
		)
	}

	completed := x.Status == types.RunStatusCompleted
	if completed && x.Conclusion == "" {
		return goerr.Wrap(types.ErrInvalidGitHubData, "completed run has no conclusion", goerr.V("id", x.ID))
	}
	if !completed && x.Conclusion != "" {
		return goerr.Wrap(types.ErrInvalidGitHubData, "unfinished run has conclusion",
			goerr.V("id", x.ID),
			goerr.V("conclusion", x.Conclusion),
		)
	}

	return nil
}

// StartedAt returns run_started_at if present, otherwise created_at
func (x *WorkflowRun) StartedAt() time.Time {
	if x.RunStartedAt != nil && !x.RunStartedAt.IsZero() {
		return *x.RunStartedAt
	}
	return x.CreatedAt
}

// DurationSeconds returns updated_at minus StartedAt in whole seconds. It may be negative.
func (x *WorkflowRun) DurationSeconds() int64 {
	return CalculateDuration(x.StartedAt(), x.UpdatedAt)
}
