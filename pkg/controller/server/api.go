package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octodash/pkg/domain/interfaces"
	"github.com/m-mizutani/octodash/pkg/domain/model"
	"github.com/m-mizutani/octodash/pkg/domain/types"
	"github.com/m-mizutani/octodash/pkg/utils/errutil"
	"github.com/m-mizutani/octodash/pkg/utils/logging"
)

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type repositoriesResponse struct {
	Repositories []*model.Repository    `json:"repositories"`
	Strategy     types.DiscoveryStrategy `json:"strategy"`
}

type workflowRunsResponse struct {
	WorkflowRuns []*model.WorkflowRun `json:"workflow_runs"`
}

type rateLimitResponse struct {
	Resources struct {
		Core *model.RateLimit `json:"core"`
	} `json:"resources"`
}

type repositoryStatsResponse struct {
	Repositories []*model.RepoWorkflowStats `json:"repositories"`
}

func writeJSON(w http.ResponseWriter, code int, data any) {
	body, err := json.Marshal(data)
	if err != nil {
		logging.Default().Error("fail to marshal response", slog.Any("error", err))
		code = http.StatusInternalServerError
		body = []byte(`{"error":"failed to encode response"}`)
	}

	w.Header().Set("Content-Type", "application/json")
	safeWrite(w, code, body)
}

// writeError maps err to a status code. Only unexpected failures are reported.
func writeError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	switch {
	case errors.Is(err, types.ErrInvalidOption):
		writeJSON(w, http.StatusBadRequest, &errorResponse{Error: msg, Details: err.Error()})
	case errors.Is(err, types.ErrUnauthorized):
		writeJSON(w, http.StatusUnauthorized, &errorResponse{Error: "Unauthorized", Details: err.Error()})
	default:
		errutil.HandleError(r.Context(), msg, err)
		writeJSON(w, http.StatusInternalServerError, &errorResponse{Error: msg, Details: err.Error()})
	}
}

func handleListRepositories(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := uc.DiscoverRepositories(r.Context(), tokenFrom(r.Context()))
		if err != nil {
			writeError(w, r, "Failed to fetch repositories", err)
			return
		}

		repos := result.Repositories
		if repos == nil {
			repos = []*model.Repository{}
		}
		writeJSON(w, http.StatusOK, &repositoriesResponse{
			Repositories: repos,
			Strategy:     result.Strategy,
		})
	}
}

func parseListWorkflowRunsInput(r *http.Request) (*model.ListWorkflowRunsInput, error) {
	query := r.URL.Query()
	input := &model.ListWorkflowRunsInput{
		Status: types.RunStatus(query.Get("status")),
	}

	if v := query.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			return nil, goerr.Wrap(types.ErrInvalidOption, "limit must be an integer", goerr.V("limit", v))
		}
		input.Limit = limit
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	return input, nil
}

func handleListWorkflowRuns(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		input, err := parseListWorkflowRunsInput(r)
		if err != nil {
			writeError(w, r, "Invalid query", err)
			return
		}

		runs, err := uc.ListWorkflowRuns(r.Context(), tokenFrom(r.Context()), input)
		if err != nil {
			writeError(w, r, "Failed to fetch workflow runs", err)
			return
		}

		if runs == nil {
			runs = []*model.WorkflowRun{}
		}
		writeJSON(w, http.StatusOK, &workflowRunsResponse{WorkflowRuns: runs})
	}
}

func handleGetRateLimit(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := uc.GetRateLimit(r.Context(), tokenFrom(r.Context()))
		if err != nil {
			writeError(w, r, "Failed to check rate limit", err)
			return
		}

		var resp rateLimitResponse
		resp.Resources.Core = limit
		writeJSON(w, http.StatusOK, &resp)
	}
}

func handleGetDashboardStats(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := uc.GetDashboardStats(r.Context(), tokenFrom(r.Context()))
		if err != nil {
			writeError(w, r, "Failed to calculate stats", err)
			return
		}
		writeJSON(w, http.StatusOK, stats)
	}
}

func handleGetRepositoryStats(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := uc.GetRepositoryStats(r.Context(), tokenFrom(r.Context()))
		if err != nil {
			writeError(w, r, "Failed to calculate repository stats", err)
			return
		}

		if stats == nil {
			stats = []*model.RepoWorkflowStats{}
		}
		writeJSON(w, http.StatusOK, &repositoryStatsResponse{Repositories: stats})
	}
}
