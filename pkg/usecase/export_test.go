package usecase

var (
	RunBatchesForTest         = runBatches[int]
	UniqueRepositoriesForTest = uniqueRepositories
)
