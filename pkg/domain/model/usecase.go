package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octodash/pkg/domain/types"
)

// DiscoveryResult tells which discovery strategy produced the repositories.
// PrimaryError holds the reason of the GraphQL failure when the REST fallback was used.
type DiscoveryResult struct {
	Strategy     types.DiscoveryStrategy
	Repositories []*Repository
	PrimaryError error
}

type ListWorkflowRunsInput struct {
	Status types.RunStatus
	Limit  int
}

func (x *ListWorkflowRunsInput) Validate() error {
	if x.Status != "" && !x.Status.Valid() {
		return goerr.Wrap(types.ErrInvalidOption, "invalid status", goerr.V("status", x.Status))
	}
	if x.Limit < 0 {
		return goerr.Wrap(types.ErrInvalidOption, "limit must not be negative", goerr.V("limit", x.Limit))
	}
	return nil
}

type DashboardStats struct {
	Strategy types.DiscoveryStrategy `json:"strategy"`
	Stats    *WorkflowStats          `json:"stats"`
}
