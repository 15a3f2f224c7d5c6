package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/m-mizutani/octodash/pkg/domain/types"
)

// MaxRunDuration is the cap applied to a single run duration in seconds.
const MaxRunDuration int64 = 24 * 60 * 60

// CalculateDuration returns end - start in whole seconds, truncated toward zero.
func CalculateDuration(start, end time.Time) int64 {
	return int64(end.Sub(start) / time.Second)
}

// ClampDuration discards negative durations and caps the rest at MaxRunDuration.
// The second return value is false when the duration must not be counted.
func ClampDuration(seconds int64) (int64, bool) {
	if seconds < 0 {
		return 0, false
	}
	if seconds > MaxRunDuration {
		return MaxRunDuration, true
	}
	return seconds, true
}

// FormatDuration renders seconds as "45s", "3m 20s", "2h 5m".
func FormatDuration(seconds int64) string {
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}

	minutes := seconds / 60
	remainingSeconds := seconds % 60
	if minutes < 60 {
		if remainingSeconds > 0 {
			return fmt.Sprintf("%dm %ds", minutes, remainingSeconds)
		}
		return fmt.Sprintf("%dm", minutes)
	}

	hours := minutes / 60
	remainingMinutes := minutes % 60
	if remainingMinutes > 0 {
		return fmt.Sprintf("%dh %dm", hours, remainingMinutes)
	}
	return fmt.Sprintf("%dh", hours)
}

// FormatDurationCompact always keeps the lower unit, e.g. "1m 0s", "2h 0m".
func FormatDurationCompact(seconds int64) string {
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}
	minutes := seconds / 60
	if minutes < 60 {
		return fmt.Sprintf("%dm %ds", minutes, seconds%60)
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

// StatusText returns a human label such as "In Progress", "Success" or "Timed out".
func StatusText(status types.RunStatus, conclusion types.RunConclusion) string {
	switch {
	case status == types.RunStatusQueued:
		return "Queued"
	case status == types.RunStatusInProgress:
		return "In Progress"
	case status == types.RunStatusCompleted && conclusion != "":
		return humanize(string(conclusion))
	}
	return humanize(string(status))
}

func humanize(v string) string {
	if v == "" {
		return ""
	}
	// only the first underscore is replaced: "action_required" -> "Action required"
	v = strings.Replace(v, "_", " ", 1)
	return strings.ToUpper(v[:1]) + v[1:]
}

// StatusColor is the colour class of a run state.
type StatusColor string

const (
	StatusColorGray   StatusColor = "gray"
	StatusColorSilver StatusColor = "silver"
	StatusColorBlue   StatusColor = "blue"
	StatusColorGreen  StatusColor = "green"
	StatusColorRed    StatusColor = "red"
	StatusColorOrange StatusColor = "orange"
)

func StatusColorOf(status types.RunStatus, conclusion types.RunConclusion) StatusColor {
	switch status {
	case types.RunStatusInProgress:
		return StatusColorBlue
	case types.RunStatusCompleted:
		switch conclusion {
		case types.RunConclusionSuccess:
			return StatusColorGreen
		case types.RunConclusionFailure:
			return StatusColorRed
		case types.RunConclusionSkipped:
			return StatusColorSilver
		case types.RunConclusionTimedOut:
			return StatusColorOrange
		}
	}
	return StatusColorGray
}

// GroupRunsByRepository groups runs by repository full name, keeping input order within a group.
func GroupRunsByRepository(runs []*WorkflowRun) map[string][]*WorkflowRun {
	grouped := make(map[string][]*WorkflowRun)
	for _, run := range runs {
		name := run.Repository.FullName
		grouped[name] = append(grouped[name], run)
	}
	return grouped
}
