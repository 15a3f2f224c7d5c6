package model_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/octodash/pkg/domain/model"
	"github.com/m-mizutani/octodash/pkg/domain/types"
)

func TestWorkflowRunJSON(t *testing.T) {
	t.Run("missing run_started_at is null", func(t *testing.T) {
		run := &model.WorkflowRun{Status: types.RunStatusQueued, CreatedAt: now}
		raw := gt.R1(json.Marshal(run)).NoError(t)

		var decoded map[string]any
		gt.NoError(t, json.Unmarshal(raw, &decoded))
		gt.V(t, decoded["run_started_at"]).Equal(nil)
		gt.V(t, decoded["conclusion"]).Equal(nil)
	})

	t.Run("run_started_at is kept when set", func(t *testing.T) {
		started := now.Add(time.Minute)
		run := &model.WorkflowRun{Status: types.RunStatusInProgress, CreatedAt: now, RunStartedAt: &started}
		raw := gt.R1(json.Marshal(run)).NoError(t)

		var decoded map[string]any
		gt.NoError(t, json.Unmarshal(raw, &decoded))
		gt.V(t, decoded["run_started_at"]).Equal("2025-06-15T12:01:00Z")
	})
}

func TestWorkflowRunStartedAt(t *testing.T) {
	t.Run("falls back to created_at", func(t *testing.T) {
		run := &model.WorkflowRun{CreatedAt: now}
		gt.V(t, run.StartedAt()).Equal(now)
	})

	t.Run("zero run_started_at falls back to created_at", func(t *testing.T) {
		run := &model.WorkflowRun{CreatedAt: now, RunStartedAt: &time.Time{}}
		gt.V(t, run.StartedAt()).Equal(now)
	})

	t.Run("uses run_started_at", func(t *testing.T) {
		started := now.Add(30 * time.Second)
		run := &model.WorkflowRun{CreatedAt: now, UpdatedAt: now.Add(90 * time.Second), RunStartedAt: &started}
		gt.V(t, run.StartedAt()).Equal(started)
		gt.V(t, run.DurationSeconds()).Equal(int64(60))
	})
}

func TestRepositoryJSON(t *testing.T) {
	t.Run("missing pushed_at is null", func(t *testing.T) {
		raw := gt.R1(json.Marshal(&model.Repository{ID: 1})).NoError(t)

		var decoded map[string]any
		gt.NoError(t, json.Unmarshal(raw, &decoded))
		v, ok := decoded["pushed_at"]
		gt.True(t, ok)
		gt.V(t, v).Equal(nil)
	})

	t.Run("WithActions keeps pushed_at", func(t *testing.T) {
		pushed := now
		repo := (&model.Repository{ID: 1, PushedAt: &pushed}).WithActions()
		gt.True(t, repo.HasActions)
		gt.V(t, *repo.PushedAt).Equal(now)
	})
}
