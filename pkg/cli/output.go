package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octodash/pkg/domain/model"
	"github.com/m-mizutani/octodash/pkg/domain/types"
	"github.com/m-mizutani/octodash/pkg/utils/safe"
)

const (
	formatText = "text"
	formatJSON = "json"
)

var statusColors = map[model.StatusColor]*color.Color{
	model.StatusColorGray:   color.New(color.FgHiBlack),
	model.StatusColorSilver: color.New(color.FgWhite),
	model.StatusColorBlue:   color.New(color.FgBlue, color.Bold),
	model.StatusColorGreen:  color.New(color.FgGreen, color.Bold),
	model.StatusColorRed:    color.New(color.FgRed, color.Bold),
	model.StatusColorOrange: color.New(color.FgYellow, color.Bold),
}

var (
	repoNameColor = color.New(color.FgHiWhite, color.Bold)
	labelColor    = color.New(color.FgCyan)
	dimColor      = color.New(color.FgHiBlack)
)

func validateFormat(format string) error {
	switch format {
	case formatText, formatJSON:
		return nil
	}
	return goerr.Wrap(types.ErrInvalidOption, "format must be 'text' or 'json'", goerr.V("format", format))
}

// writeOutput runs fn against stdout or the file at path
func writeOutput(path string, fn func(w io.Writer) error) error {
	if path == "" || path == "-" {
		return fn(os.Stdout)
	}

	fd, err := os.Create(filepath.Clean(path))
	if err != nil {
		return goerr.Wrap(err, "failed to create output file", goerr.V("path", path))
	}
	defer safe.Close(fd)

	return fn(fd)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return goerr.Wrap(err, "failed to encode output")
	}
	return nil
}

func printRepositories(w io.Writer, result *model.DiscoveryResult) {
	fmt.Fprintf(w, "%s %s (%d repositories)\n",
		labelColor.Sprint("strategy:"), result.Strategy, len(result.Repositories))

	for _, repo := range result.Repositories {
		visibility := "public"
		if repo.Private {
			visibility = "private"
		}
		language := "-"
		if repo.Language != nil {
			language = *repo.Language
		}

		fmt.Fprintf(w, "%s  %s  %s  %s\n",
			repoNameColor.Sprint(repo.FullName),
			dimColor.Sprint(visibility),
			language,
			dimColor.Sprint("updated "+repo.UpdatedAt.Local().Format(time.DateTime)),
		)
	}
}

// runDuration returns the elapsed time of a run as text. Unfinished runs are measured up to now.
func runDuration(run *model.WorkflowRun, now time.Time) string {
	switch run.Status {
	case types.RunStatusCompleted:
		if d, ok := model.ClampDuration(run.DurationSeconds()); ok {
			return model.FormatDuration(d)
		}
	case types.RunStatusInProgress:
		if d, ok := model.ClampDuration(model.CalculateDuration(run.StartedAt(), now)); ok {
			return model.FormatDuration(d)
		}
	}
	return "-"
}

func printRuns(w io.Writer, runs []*model.WorkflowRun, now time.Time) {
	if len(runs) == 0 {
		fmt.Fprintln(w, dimColor.Sprint("no workflow runs"))
		return
	}

	for _, run := range runs {
		label := model.StatusText(run.Status, run.Conclusion)
		c := statusColors[model.StatusColorOf(run.Status, run.Conclusion)]

		fmt.Fprintf(w, "%s  %s  %s #%d  %s  %s  %s\n",
			c.Sprintf("%-15s", label),
			repoNameColor.Sprint(run.Repository.FullName),
			run.Name,
			run.RunNumber,
			run.HeadBranch,
			runDuration(run, now),
			dimColor.Sprint(run.CreatedAt.Local().Format(time.DateTime)),
		)
	}
}

func printStats(w io.Writer, stats *model.DashboardStats) {
	s := stats.Stats
	rows := []struct {
		label string
		value string
	}{
		{"Repositories", fmt.Sprintf("%d", s.TotalRepos)},
		{"Running", statusColors[model.StatusColorBlue].Sprintf("%d", s.RunningWorkflows)},
		{"Success rate", statusColors[model.StatusColorGreen].Sprintf("%d%%", s.SuccessRate)},
		{"Failure rate", statusColors[model.StatusColorRed].Sprintf("%d%%", s.FailureRate)},
		{"Total runs", fmt.Sprintf("%d", s.TotalRuns)},
		{"Avg duration", model.FormatDuration(s.AvgDuration)},
		{"Active (24h)", fmt.Sprintf("%d", s.ActiveRunsLast24h)},
	}

	fmt.Fprintf(w, "%s %s\n", labelColor.Sprint("strategy:"), stats.Strategy)
	for _, row := range rows {
		fmt.Fprintf(w, "%s %s\n", labelColor.Sprintf("%-13s", row.label), row.value)
	}
}

func printRepoStats(w io.Writer, stats []*model.RepoWorkflowStats) {
	for _, s := range stats {
		if s.TotalRuns == 0 {
			fmt.Fprintf(w, "%s  %s\n", repoNameColor.Sprint(s.RepoName), dimColor.Sprint("no runs"))
			continue
		}

		fmt.Fprintf(w, "%s  runs %d  success %s  avg %s  min %s  max %s\n",
			repoNameColor.Sprint(s.RepoName),
			s.TotalRuns,
			statusColors[model.StatusColorGreen].Sprintf("%d%%", s.SuccessRate),
			model.FormatDurationCompact(s.AvgDuration),
			model.FormatDurationCompact(s.MinDuration),
			model.FormatDurationCompact(s.MaxDuration),
		)
	}
}

func printRateLimit(w io.Writer, limit *model.RateLimit) {
	c := statusColors[model.StatusColorGreen]
	if limit.Limit > 0 && limit.Remaining*10 < limit.Limit {
		c = statusColors[model.StatusColorRed]
	}

	fmt.Fprintf(w, "%s %s/%d (used %d), resets at %s\n",
		labelColor.Sprint("core:"),
		c.Sprintf("%d", limit.Remaining),
		limit.Limit,
		limit.Used,
		time.Unix(limit.Reset, 0).Local().Format(time.DateTime),
	)
}
