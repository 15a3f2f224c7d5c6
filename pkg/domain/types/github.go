package types

import (
	"encoding/json"
	"log/slog"
	"strings"
)

type (
	GitHubToken       string
	GitHubRepoID      int64
	RunStatus         string
	RunConclusion     string
	OwnerType         string
	DiscoveryStrategy string
)

func (x GitHubToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubToken) String() string {
	return "***********"
}

const (
	RunStatusQueued     RunStatus = "queued"
	RunStatusInProgress RunStatus = "in_progress"
	RunStatusCompleted  RunStatus = "completed"
)

// NormalizeRunStatus maps upstream run statuses onto queued, in_progress and completed.
// Statuses that describe a run waiting to be picked up are folded into queued.
func NormalizeRunStatus(v string) (RunStatus, bool) {
	switch v {
	case "queued", "requested", "waiting", "pending":
		return RunStatusQueued, true
	case "in_progress":
		return RunStatusInProgress, true
	case "completed":
		return RunStatusCompleted, true
	default:
		return "", false
	}
}

func (x RunStatus) Valid() bool {
	switch x {
	case RunStatusQueued, RunStatusInProgress, RunStatusCompleted:
		return true
	}
	return false
}

const (
	RunConclusionSuccess        RunConclusion = "success"
	RunConclusionFailure        RunConclusion = "failure"
	RunConclusionNeutral        RunConclusion = "neutral"
	RunConclusionCancelled      RunConclusion = "cancelled"
	RunConclusionSkipped        RunConclusion = "skipped"
	RunConclusionTimedOut       RunConclusion = "timed_out"
	RunConclusionActionRequired RunConclusion = "action_required"
)

// MarshalJSON encodes an empty conclusion as null
func (x RunConclusion) MarshalJSON() ([]byte, error) {
	if x == "" {
		return []byte("null"), nil
	}
	return json.Marshal(string(x))
}

func (x *RunConclusion) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*x = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*x = RunConclusion(s)
	return nil
}

const (
	OwnerTypeUser         OwnerType = "User"
	OwnerTypeOrganization OwnerType = "Organization"
)

// NewOwnerType accepts both REST ("User", "Organization") and GraphQL __typename values.
func NewOwnerType(v string) OwnerType {
	if strings.EqualFold(v, string(OwnerTypeOrganization)) {
		return OwnerTypeOrganization
	}
	return OwnerTypeUser
}

const (
	DiscoveryStrategyGraphQL DiscoveryStrategy = "graphql"
	DiscoveryStrategyREST    DiscoveryStrategy = "rest"
)
