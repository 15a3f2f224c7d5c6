package model_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/octodash/pkg/domain/model"
	"github.com/m-mizutani/octodash/pkg/domain/types"
)

func TestClampDuration(t *testing.T) {
	d, ok := model.ClampDuration(-1)
	gt.False(t, ok)
	gt.V(t, d).Equal(int64(0))

	d, ok = model.ClampDuration(0)
	gt.True(t, ok)
	gt.V(t, d).Equal(int64(0))

	d, ok = model.ClampDuration(100000)
	gt.True(t, ok)
	gt.V(t, d).Equal(int64(86400))
}

func TestCalculateDuration(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	gt.V(t, model.CalculateDuration(start, start.Add(1500*time.Millisecond))).Equal(int64(1))
	gt.V(t, model.CalculateDuration(start, start.Add(-1500*time.Millisecond))).Equal(int64(-1))
}

func TestFormatDuration(t *testing.T) {
	testCases := map[int64]string{
		0:    "0s",
		59:   "59s",
		60:   "1m",
		200:  "3m 20s",
		3600: "1h",
		7500: "2h 5m",
	}
	for input, expect := range testCases {
		gt.V(t, model.FormatDuration(input)).Equal(expect)
	}

	gt.V(t, model.FormatDurationCompact(60)).Equal("1m 0s")
	gt.V(t, model.FormatDurationCompact(7200)).Equal("2h 0m")
	gt.V(t, model.FormatDurationCompact(5)).Equal("5s")
}

func TestStatusText(t *testing.T) {
	gt.V(t, model.StatusText(types.RunStatusQueued, "")).Equal("Queued")
	gt.V(t, model.StatusText(types.RunStatusInProgress, "")).Equal("In Progress")
	gt.V(t, model.StatusText(types.RunStatusCompleted, types.RunConclusionSuccess)).Equal("Success")
	gt.V(t, model.StatusText(types.RunStatusCompleted, types.RunConclusionTimedOut)).Equal("Timed out")
	gt.V(t, model.StatusText(types.RunStatusCompleted, "")).Equal("Completed")
}

func TestStatusColorOf(t *testing.T) {
	gt.V(t, model.StatusColorOf(types.RunStatusQueued, "")).Equal(model.StatusColorGray)
	gt.V(t, model.StatusColorOf(types.RunStatusInProgress, "")).Equal(model.StatusColorBlue)
	gt.V(t, model.StatusColorOf(types.RunStatusCompleted, types.RunConclusionSuccess)).Equal(model.StatusColorGreen)
	gt.V(t, model.StatusColorOf(types.RunStatusCompleted, types.RunConclusionFailure)).Equal(model.StatusColorRed)
	gt.V(t, model.StatusColorOf(types.RunStatusCompleted, types.RunConclusionSkipped)).Equal(model.StatusColorSilver)
	gt.V(t, model.StatusColorOf(types.RunStatusCompleted, types.RunConclusionTimedOut)).Equal(model.StatusColorOrange)
	gt.V(t, model.StatusColorOf(types.RunStatusCompleted, types.RunConclusionCancelled)).Equal(model.StatusColorGray)
}

func TestGroupRunsByRepository(t *testing.T) {
	runs := []*model.WorkflowRun{
		{ID: 1, Repository: model.RunRepository{FullName: "o/a"}},
		{ID: 2, Repository: model.RunRepository{FullName: "o/b"}},
		{ID: 3, Repository: model.RunRepository{FullName: "o/a"}},
	}
	grouped := model.GroupRunsByRepository(runs)
	gt.A(t, grouped["o/a"]).Length(2)
	gt.A(t, grouped["o/b"]).Length(1)
	gt.V(t, grouped["o/a"][1].ID).Equal(int64(3))
}

func TestWorkflowRunValidate(t *testing.T) {
	t.Run("completed with conclusion", func(t *testing.T) {
		run := &model.WorkflowRun{Status: types.RunStatusCompleted, Conclusion: types.RunConclusionSuccess}
		gt.NoError(t, run.Validate())
	})
	t.Run("completed without conclusion", func(t *testing.T) {
		run := &model.WorkflowRun{Status: types.RunStatusCompleted}
		gt.Error(t, run.Validate())
	})
	t.Run("in progress with conclusion", func(t *testing.T) {
		run := &model.WorkflowRun{Status: types.RunStatusInProgress, Conclusion: types.RunConclusionFailure}
		gt.Error(t, run.Validate())
	})
	t.Run("unknown status", func(t *testing.T) {
		run := &model.WorkflowRun{Status: "waiting"}
		gt.Error(t, run.Validate())
	})
}

func TestRepositoryWithActions(t *testing.T) {
	repo := &model.Repository{ID: 1, FullName: "o/a"}
	copied := repo.WithActions()
	gt.True(t, copied.HasActions)
	gt.False(t, repo.HasActions)
}

func TestListWorkflowRunsInputValidate(t *testing.T) {
	gt.NoError(t, (&model.ListWorkflowRunsInput{}).Validate())
	gt.NoError(t, (&model.ListWorkflowRunsInput{Status: types.RunStatusCompleted, Limit: 10}).Validate())
	gt.Error(t, (&model.ListWorkflowRunsInput{Status: "done"}).Validate())
	gt.Error(t, (&model.ListWorkflowRunsInput{Limit: -1}).Validate())
}
