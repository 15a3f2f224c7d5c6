package cli

var (
	PrintRunsForTest         = printRuns
	PrintStatsForTest        = printStats
	PrintRepoStatsForTest    = printRepoStats
	PrintRateLimitForTest    = printRateLimit
	PrintRepositoriesForTest = printRepositories
	RunDurationForTest       = runDuration
)
