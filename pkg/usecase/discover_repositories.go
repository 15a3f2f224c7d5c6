package usecase

import (
	"cmp"
	"context"
	"errors"
	"log/slog"
	"slices"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octodash/pkg/domain/interfaces"
	"github.com/m-mizutani/octodash/pkg/domain/model"
	"github.com/m-mizutani/octodash/pkg/domain/types"
	"github.com/m-mizutani/octodash/pkg/utils/logging"
)

// DiscoverRepositories returns the repositories reachable by the token that contain GitHub Actions
// workflows. GraphQL is tried first and the REST listing is used only when it fails. Results of the
// two strategies are never merged.
func (x *UseCase) DiscoverRepositories(ctx context.Context, token types.GitHubToken) (*model.DiscoveryResult, error) {
	if token == "" {
		return nil, goerr.Wrap(types.ErrUnauthorized, "GitHub token is required")
	}
	if x.clients.GitHub() == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub client is not configured")
	}

	logger := logging.From(ctx)

	repos, graphErr := x.discoverByGraphQL(ctx, token)
	if graphErr == nil {
		logger.Info("Discovered repositories",
			slog.String("strategy", string(types.DiscoveryStrategyGraphQL)),
			slog.Int("count", len(repos)),
		)
		return &model.DiscoveryResult{
			Strategy:     types.DiscoveryStrategyGraphQL,
			Repositories: repos,
		}, nil
	}

	logger.Warn("GraphQL discovery failed, falling back to REST", slog.Any("error", graphErr))

	repos, restErr := x.discoverByREST(ctx, token)
	if restErr != nil {
		return nil, goerr.Wrap(restErr, "failed to discover repositories",
			goerr.V("graphql_error", graphErr.Error()),
		)
	}

	logger.Info("Discovered repositories",
		slog.String("strategy", string(types.DiscoveryStrategyREST)),
		slog.Int("count", len(repos)),
	)

	return &model.DiscoveryResult{
		Strategy:     types.DiscoveryStrategyREST,
		Repositories: repos,
		PrimaryError: graphErr,
	}, nil
}

func (x *UseCase) discoverByGraphQL(ctx context.Context, token types.GitHubToken) ([]*model.Repository, error) {
	var cursor string
	var collected []*model.Repository

	for page := 1; page <= x.graphMaxPages; page++ {
		input := &interfaces.QueryViewerRepositoriesInput{
			Cursor:   cursor,
			PageSize: x.graphPageSize,
		}
		// organizations are not paginated, so they are fetched along with the first page only
		if page == 1 {
			input.IncludeOrganizations = true
			input.OrganizationSize = x.orgLimit
			input.OrgRepoSize = x.orgRepoLimit
		}

		callCtx, cancel := x.withCallTimeout(ctx)
		resp, err := x.clients.GitHub().QueryViewerRepositories(callCtx, token, input)
		cancel()
		if err != nil {
			return nil, goerr.Wrap(err, "failed to query viewer repositories", goerr.V("page", page))
		}

		collected = append(collected, resp.Repositories...)
		collected = append(collected, resp.OrganizationRepositories...)

		if !resp.HasNextPage || resp.EndCursor == "" {
			break
		}
		cursor = resp.EndCursor
	}

	repos := uniqueRepositories(collected, func(repo *model.Repository) bool {
		return repo.HasActions
	})

	// user and organization repositories are sorted independently upstream
	slices.SortStableFunc(repos, func(a, b *model.Repository) int {
		if c := b.UpdatedAt.Compare(a.UpdatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	return repos, nil
}

func (x *UseCase) discoverByREST(ctx context.Context, token types.GitHubToken) ([]*model.Repository, error) {
	logger := logging.From(ctx)
	gh := x.clients.GitHub()

	callCtx, cancel := x.withCallTimeout(ctx)
	candidates, err := gh.ListUserRepositories(callCtx, token, &interfaces.ListUserRepositoriesInput{
		Type:    "all",
		Sort:    "updated",
		PerPage: x.restRepoLimit,
		Page:    1,
	})
	cancel()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list user repositories")
	}

	probed := make([]*model.Repository, len(candidates))
	err = runBatches(ctx, candidates, x.probeBatchSize, x.probeBatchDelay, func(ctx context.Context, idx int, repo *model.Repository) error {
		callCtx, cancel := x.withCallTimeout(ctx)
		defer cancel()

		workflows, err := gh.ListWorkflows(callCtx, token, repo.Owner.Login, repo.Name)
		if err != nil {
			if errors.Is(err, types.ErrRateLimited) {
				logger.Warn("Rate limited while probing workflows", slog.String("repo", repo.FullName))
			} else {
				logger.Warn("Failed to probe workflows",
					slog.String("repo", repo.FullName),
					slog.Any("error", err),
				)
			}
			return nil
		}

		if len(workflows) > 0 {
			probed[idx] = repo.WithActions()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return uniqueRepositories(probed, func(repo *model.Repository) bool {
		return repo != nil
	}), nil
}

// uniqueRepositories keeps the first occurrence of each repository ID among those accepted by keep
func uniqueRepositories(repos []*model.Repository, keep func(*model.Repository) bool) []*model.Repository {
	seen := make(map[types.GitHubRepoID]struct{}, len(repos))
	result := make([]*model.Repository, 0, len(repos))

	for _, repo := range repos {
		if repo == nil || !keep(repo) {
			continue
		}
		if _, ok := seen[repo.ID]; ok {
			continue
		}
		seen[repo.ID] = struct{}{}
		result = append(result, repo)
	}

	return result
}
