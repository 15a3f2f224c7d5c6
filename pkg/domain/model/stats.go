package model

import (
	"math"
	"time"

	"github.com/m-mizutani/octodash/pkg/domain/types"
)

const (
	DefaultDurationWindow = 30 * 24 * time.Hour
	DefaultActiveWindow   = 24 * time.Hour
)

// WorkflowStats is derived from a run collection on demand and never persisted
type WorkflowStats struct {
	TotalRepos        int   `json:"totalRepos"`
	RunningWorkflows  int   `json:"runningWorkflows"`
	SuccessRate       int   `json:"successRate"`
	FailureRate       int   `json:"failureRate"`
	TotalRuns         int   `json:"totalRuns"`
	AvgDuration       int64 `json:"avgDuration"`
	ActiveRunsLast24h int   `json:"activeRunsLast24h"`
}

type RepoWorkflowStats struct {
	RepoName    string `json:"repoName"`
	TotalRuns   int    `json:"totalRuns"`
	SuccessRate int    `json:"successRate"`
	AvgDuration int64  `json:"avgDuration"`
	MinDuration int64  `json:"minDuration"`
	MaxDuration int64  `json:"maxDuration"`
}

type statsConfig struct {
	durationWindow time.Duration
	activeWindow   time.Duration
}

type StatsOption func(*statsConfig)

// WithDurationWindow overrides the trailing window of runs used for the average duration
func WithDurationWindow(d time.Duration) StatsOption {
	return func(cfg *statsConfig) {
		cfg.durationWindow = d
	}
}

// WithActiveWindow overrides the trailing window used for ActiveRunsLast24h
func WithActiveWindow(d time.Duration) StatsOption {
	return func(cfg *statsConfig) {
		cfg.activeWindow = d
	}
}

// NewWorkflowStats aggregates runs across repositories relative to now.
func NewWorkflowStats(runs []*WorkflowRun, totalRepos int, now time.Time, options ...StatsOption) *WorkflowStats {
	cfg := &statsConfig{
		durationWindow: DefaultDurationWindow,
		activeWindow:   DefaultActiveWindow,
	}
	for _, opt := range options {
		opt(cfg)
	}

	stats := &WorkflowStats{
		TotalRepos: totalRepos,
		TotalRuns:  len(runs),
	}

	durationSince := now.Add(-cfg.durationWindow)
	activeSince := now.Add(-cfg.activeWindow)

	var completed, succeeded, failed int
	var totalDuration, counted int64

	for _, run := range runs {
		if run.CreatedAt.After(activeSince) {
			stats.ActiveRunsLast24h++
		}

		switch run.Status {
		case types.RunStatusInProgress:
			stats.RunningWorkflows++
			continue
		case types.RunStatusCompleted:
		default:
			continue
		}

		completed++
		switch run.Conclusion {
		case types.RunConclusionSuccess:
			succeeded++
		case types.RunConclusionFailure:
			failed++
		}

		if !run.CreatedAt.After(durationSince) {
			continue
		}
		if d, ok := ClampDuration(run.DurationSeconds()); ok {
			totalDuration += d
			counted++
		}
	}

	stats.SuccessRate = percentage(succeeded, completed)
	stats.FailureRate = percentage(failed, completed)
	if counted > 0 {
		stats.AvgDuration = int64(math.Round(float64(totalDuration) / float64(counted)))
	}

	return stats
}

// NewRepoWorkflowStats aggregates the runs of the repository named repoName (full name).
// Durations that are zero after clamping are left out of avg/min/max.
func NewRepoWorkflowStats(runs []*WorkflowRun, repoName string) *RepoWorkflowStats {
	stats := &RepoWorkflowStats{RepoName: repoName}

	var completed, succeeded int
	var durations []int64

	for _, run := range runs {
		if run.Repository.FullName != repoName {
			continue
		}
		stats.TotalRuns++

		if run.Status != types.RunStatusCompleted {
			continue
		}
		completed++
		if run.Conclusion == types.RunConclusionSuccess {
			succeeded++
		}

		if d, ok := ClampDuration(run.DurationSeconds()); ok && d > 0 {
			durations = append(durations, d)
		}
	}

	stats.SuccessRate = percentage(succeeded, completed)

	if len(durations) > 0 {
		var total int64
		stats.MinDuration = durations[0]
		stats.MaxDuration = durations[0]
		for _, d := range durations {
			total += d
			stats.MinDuration = min(stats.MinDuration, d)
			stats.MaxDuration = max(stats.MaxDuration, d)
		}
		stats.AvgDuration = int64(math.Round(float64(total) / float64(len(durations))))
	}

	return stats
}

func percentage(n, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(n) / float64(total) * 100))
}
