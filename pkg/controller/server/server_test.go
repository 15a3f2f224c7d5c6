package server_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/octodash/pkg/controller/server"
	"github.com/m-mizutani/octodash/pkg/domain/mock"
	"github.com/m-mizutani/octodash/pkg/domain/model"
	"github.com/m-mizutani/octodash/pkg/domain/types"
)

func doRequest(t *testing.T, srv *server.Server, path string, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	srv.Mux().ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRouterSmokeTests(t *testing.T) {
	t.Run("GET /health returns 200", func(t *testing.T) {
		srv := server.New(&mock.UseCaseMock{})

		rec := doRequest(t, srv, "/health", "")
		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.V(t, rec.Body.String()).Equal("ok")
	})

	t.Run("API requires bearer token", func(t *testing.T) {
		mockUC := &mock.UseCaseMock{}
		srv := server.New(mockUC)

		for _, path := range []string{"/api/repos", "/api/workflows", "/api/rate-limit", "/api/stats", "/api/stats/repos"} {
			rec := doRequest(t, srv, path, "")
			gt.V(t, rec.Code).Equal(http.StatusUnauthorized)
			gt.V(t, decodeBody(t, rec)["error"]).Equal("Unauthorized")
		}
		gt.A(t, mockUC.DiscoverRepositoriesCalls()).Length(0)
	})

	t.Run("non bearer scheme is rejected", func(t *testing.T) {
		srv := server.New(&mock.UseCaseMock{})

		req := httptest.NewRequest(http.MethodGet, "/api/repos", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, req)
		gt.V(t, rec.Code).Equal(http.StatusUnauthorized)
	})
}

func TestListRepositories(t *testing.T) {
	mockUC := &mock.UseCaseMock{
		DiscoverRepositoriesFunc: func(ctx context.Context, token types.GitHubToken) (*model.DiscoveryResult, error) {
			gt.V(t, token).Equal(types.GitHubToken("gho_xxx"))
			return &model.DiscoveryResult{
				Strategy: types.DiscoveryStrategyREST,
				Repositories: []*model.Repository{
					{ID: 1, Name: "api", FullName: "alice/api", HasActions: true},
				},
			}, nil
		},
	}
	srv := server.New(mockUC)

	rec := doRequest(t, srv, "/api/repos", "gho_xxx")
	gt.V(t, rec.Code).Equal(http.StatusOK)
	gt.V(t, rec.Header().Get("Content-Type")).Equal("application/json")

	var resp struct {
		Repositories []*model.Repository    `json:"repositories"`
		Strategy     types.DiscoveryStrategy `json:"strategy"`
	}
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	gt.V(t, resp.Strategy).Equal(types.DiscoveryStrategyREST)
	gt.A(t, resp.Repositories).Length(1)
	gt.V(t, resp.Repositories[0].FullName).Equal("alice/api")
}

func TestListWorkflowRuns(t *testing.T) {
	t.Run("query is passed to usecase", func(t *testing.T) {
		mockUC := &mock.UseCaseMock{
			ListWorkflowRunsFunc: func(ctx context.Context, token types.GitHubToken, input *model.ListWorkflowRunsInput) ([]*model.WorkflowRun, error) {
				return []*model.WorkflowRun{
					{ID: 10, Status: types.RunStatusInProgress},
				}, nil
			},
		}
		srv := server.New(mockUC)

		rec := doRequest(t, srv, "/api/workflows?status=in_progress&limit=10", "gho_xxx")
		gt.V(t, rec.Code).Equal(http.StatusOK)

		calls := mockUC.ListWorkflowRunsCalls()
		gt.A(t, calls).Length(1)
		gt.V(t, calls[0].Input.Status).Equal(types.RunStatusInProgress)
		gt.V(t, calls[0].Input.Limit).Equal(10)

		var resp struct {
			WorkflowRuns []map[string]any `json:"workflow_runs"`
		}
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		gt.A(t, resp.WorkflowRuns).Length(1)
		gt.V(t, resp.WorkflowRuns[0]["conclusion"]).Equal(nil)
	})

	t.Run("empty result is an empty array", func(t *testing.T) {
		mockUC := &mock.UseCaseMock{
			ListWorkflowRunsFunc: func(ctx context.Context, token types.GitHubToken, input *model.ListWorkflowRunsInput) ([]*model.WorkflowRun, error) {
				return nil, nil
			},
		}
		srv := server.New(mockUC)

		rec := doRequest(t, srv, "/api/workflows", "gho_xxx")
		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.V(t, rec.Body.String()).Equal(`{"workflow_runs":[]}`)
	})

	t.Run("invalid query is bad request", func(t *testing.T) {
		mockUC := &mock.UseCaseMock{}
		srv := server.New(mockUC)

		for _, path := range []string{
			"/api/workflows?status=done",
			"/api/workflows?limit=ten",
			"/api/workflows?limit=-1",
		} {
			rec := doRequest(t, srv, path, "gho_xxx")
			gt.V(t, rec.Code).Equal(http.StatusBadRequest)
		}
		gt.A(t, mockUC.ListWorkflowRunsCalls()).Length(0)
	})

	t.Run("engine failure is internal server error", func(t *testing.T) {
		mockUC := &mock.UseCaseMock{
			ListWorkflowRunsFunc: func(ctx context.Context, token types.GitHubToken, input *model.ListWorkflowRunsInput) ([]*model.WorkflowRun, error) {
				return nil, goerr.New("both strategies failed")
			},
		}
		srv := server.New(mockUC)

		rec := doRequest(t, srv, "/api/workflows", "gho_xxx")
		gt.V(t, rec.Code).Equal(http.StatusInternalServerError)
		body := decodeBody(t, rec)
		gt.V(t, body["error"]).Equal("Failed to fetch workflow runs")
		gt.S(t, body["details"].(string)).Contains("both strategies failed")
	})

	t.Run("upstream rejects credential", func(t *testing.T) {
		mockUC := &mock.UseCaseMock{
			ListWorkflowRunsFunc: func(ctx context.Context, token types.GitHubToken, input *model.ListWorkflowRunsInput) ([]*model.WorkflowRun, error) {
				return nil, goerr.Wrap(types.ErrUnauthorized, "bad credentials")
			},
		}
		srv := server.New(mockUC)

		rec := doRequest(t, srv, "/api/workflows", "gho_xxx")
		gt.V(t, rec.Code).Equal(http.StatusUnauthorized)
	})
}

func TestGetRateLimit(t *testing.T) {
	mockUC := &mock.UseCaseMock{
		GetRateLimitFunc: func(ctx context.Context, token types.GitHubToken) (*model.RateLimit, error) {
			return &model.RateLimit{Limit: 5000, Remaining: 4999, Reset: 1750000000, Used: 1}, nil
		},
	}
	srv := server.New(mockUC)

	rec := doRequest(t, srv, "/api/rate-limit", "gho_xxx")
	gt.V(t, rec.Code).Equal(http.StatusOK)
	gt.V(t, rec.Body.String()).Equal(`{"resources":{"core":{"limit":5000,"remaining":4999,"reset":1750000000,"used":1}}}`)
}

func TestStats(t *testing.T) {
	mockUC := &mock.UseCaseMock{
		GetDashboardStatsFunc: func(ctx context.Context, token types.GitHubToken) (*model.DashboardStats, error) {
			return &model.DashboardStats{
				Strategy: types.DiscoveryStrategyGraphQL,
				Stats:    &model.WorkflowStats{TotalRepos: 3, TotalRuns: 3, AvgDuration: 315},
			}, nil
		},
		GetRepositoryStatsFunc: func(ctx context.Context, token types.GitHubToken) ([]*model.RepoWorkflowStats, error) {
			return []*model.RepoWorkflowStats{{RepoName: "alice/api", TotalRuns: 2}}, nil
		},
	}
	srv := server.New(mockUC)

	t.Run("dashboard stats", func(t *testing.T) {
		rec := doRequest(t, srv, "/api/stats", "gho_xxx")
		gt.V(t, rec.Code).Equal(http.StatusOK)

		var resp model.DashboardStats
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		gt.V(t, resp.Strategy).Equal(types.DiscoveryStrategyGraphQL)
		gt.V(t, resp.Stats.AvgDuration).Equal(int64(315))
	})

	t.Run("repository stats", func(t *testing.T) {
		rec := doRequest(t, srv, "/api/stats/repos", "gho_xxx")
		gt.V(t, rec.Code).Equal(http.StatusOK)

		var resp struct {
			Repositories []*model.RepoWorkflowStats `json:"repositories"`
		}
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		gt.A(t, resp.Repositories).Length(1)
		gt.V(t, resp.Repositories[0].RepoName).Equal("alice/api")
	})
}

func TestRequestTimeout(t *testing.T) {
	mockUC := &mock.UseCaseMock{
		DiscoverRepositoriesFunc: func(ctx context.Context, token types.GitHubToken) (*model.DiscoveryResult, error) {
			<-ctx.Done()
			return nil, goerr.Wrap(ctx.Err(), "discovery aborted")
		},
	}
	srv := server.New(mockUC, server.WithRequestTimeout(20*time.Millisecond))

	rec := doRequest(t, srv, "/api/repos", "gho_xxx")
	gt.V(t, rec.Code).Equal(http.StatusInternalServerError)

	calls := mockUC.DiscoverRepositoriesCalls()
	gt.A(t, calls).Length(1)
	gt.True(t, errors.Is(calls[0].Ctx.Err(), context.DeadlineExceeded))
}
