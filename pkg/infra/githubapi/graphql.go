package githubapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octodash/pkg/domain/interfaces"
	"github.com/m-mizutani/octodash/pkg/domain/model"
	"github.com/m-mizutani/octodash/pkg/domain/types"
	"github.com/m-mizutani/octodash/pkg/utils/logging"
)

const repositoryFragment = `
fragment RepoFragment on Repository {
  databaseId
  name
  description
  url
  updatedAt
  pushedAt
  isPrivate
  stargazerCount
  owner {
    login
    avatarUrl
    __typename
  }
  hasWorkflows: object(expression: "HEAD:.github/workflows") {
    ... on Tree {
      entries {
        name
      }
    }
  }
}`

const organizationsBlock = `
    organizations(first: %d) {
      nodes {
        repositories(first: %d, orderBy: {field: UPDATED_AT, direction: DESC}) {
          nodes {
            ...RepoFragment
          }
        }
      }
    }`

const viewerRepositoriesQuery = `
query($cursor: String) {
  viewer {
    login
    repositories(
      first: %d,
      after: $cursor,
      orderBy: {field: UPDATED_AT, direction: DESC},
      ownerAffiliations: [OWNER, ORGANIZATION_MEMBER, COLLABORATOR]
    ) {
      pageInfo {
        hasNextPage
        endCursor
      }
      nodes {
        ...RepoFragment
      }
    }%s
  }
}
%s`

func buildViewerRepositoriesQuery(input *interfaces.QueryViewerRepositoriesInput) string {
	var orgs string
	if input.IncludeOrganizations {
		orgs = fmt.Sprintf(organizationsBlock, input.OrganizationSize, input.OrgRepoSize)
	}
	return fmt.Sprintf(viewerRepositoriesQuery, input.PageSize, orgs, repositoryFragment)
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type graphQLError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

type viewerRepositoriesResponse struct {
	Data *struct {
		Viewer *struct {
			Login        string `json:"login"`
			Repositories struct {
				PageInfo struct {
					HasNextPage bool    `json:"hasNextPage"`
					EndCursor   *string `json:"endCursor"`
				} `json:"pageInfo"`
				Nodes []*repositoryNode `json:"nodes"`
			} `json:"repositories"`
			Organizations *struct {
				Nodes []*struct {
					Repositories *struct {
						Nodes []*repositoryNode `json:"nodes"`
					} `json:"repositories"`
				} `json:"nodes"`
			} `json:"organizations"`
		} `json:"viewer"`
	} `json:"data"`
	Errors []graphQLError `json:"errors"`
}

type repositoryNode struct {
	DatabaseID     int64      `json:"databaseId"`
	Name           string     `json:"name"`
	Description    *string    `json:"description"`
	URL            string     `json:"url"`
	UpdatedAt      time.Time  `json:"updatedAt"`
	PushedAt       *time.Time `json:"pushedAt"`
	IsPrivate      bool       `json:"isPrivate"`
	StargazerCount int        `json:"stargazerCount"`
	Owner          struct {
		Login     string `json:"login"`
		AvatarURL string `json:"avatarUrl"`
		Typename  string `json:"__typename"`
	} `json:"owner"`
	// HasWorkflows is null when HEAD has no .github/workflows tree
	HasWorkflows *struct {
		Entries []struct {
			Name string `json:"name"`
		} `json:"entries"`
	} `json:"hasWorkflows"`
}

func (x *repositoryNode) toModel() *model.Repository {
	repo := &model.Repository{
		ID:              types.GitHubRepoID(x.DatabaseID),
		Name:            x.Name,
		FullName:        x.Owner.Login + "/" + x.Name,
		Private:         x.IsPrivate,
		HTMLURL:         x.URL,
		UpdatedAt:       x.UpdatedAt,
		PushedAt:        x.PushedAt,
		StargazersCount: x.StargazerCount,
		HasActions:      x.HasWorkflows != nil,
		Owner: model.RepositoryOwner{
			Login:     x.Owner.Login,
			AvatarURL: x.Owner.AvatarURL,
			Type:      types.NewOwnerType(x.Owner.Typename),
		},
	}
	if x.Description != nil {
		repo.Description = *x.Description
	}
	return repo
}

func nodesToModel(nodes []*repositoryNode) []*model.Repository {
	repos := make([]*model.Repository, 0, len(nodes))
	for _, node := range nodes {
		if node == nil {
			continue
		}
		repos = append(repos, node.toModel())
	}
	return repos
}

// QueryViewerRepositories fetches one page of the viewer's affiliated repositories. Organization
// repositories are included only when requested, which the caller does on the first page.
func (x *Client) QueryViewerRepositories(ctx context.Context, token types.GitHubToken, input *interfaces.QueryViewerRepositoriesInput) (*model.ViewerRepositoriesPage, error) {
	client, err := x.buildGithubClient(token)
	if err != nil {
		return nil, err
	}
	if err := x.wait(ctx); err != nil {
		return nil, err
	}

	var cursor any
	if input.Cursor != "" {
		cursor = input.Cursor
	}

	body := &graphQLRequest{
		Query:     buildViewerRepositoriesQuery(input),
		Variables: map[string]any{"cursor": cursor},
	}

	req, err := client.NewRequest(http.MethodPost, x.graphQLURL, body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create GraphQL request")
	}

	var resp viewerRepositoriesResponse
	if _, err := client.Do(ctx, req, &resp); err != nil {
		return nil, wrapError(err, "failed to query viewer repositories", goerr.V("cursor", input.Cursor))
	}

	if len(resp.Errors) > 0 {
		messages := make([]string, len(resp.Errors))
		for i, e := range resp.Errors {
			messages[i] = e.Message
		}
		return nil, goerr.Wrap(types.ErrInvalidGitHubData, "GraphQL query returned errors",
			goerr.V("errors", strings.Join(messages, "; ")),
			goerr.V("cursor", input.Cursor),
		)
	}
	if resp.Data == nil || resp.Data.Viewer == nil {
		return nil, goerr.Wrap(types.ErrInvalidGitHubData, "GraphQL response has no viewer")
	}

	viewer := resp.Data.Viewer
	page := &model.ViewerRepositoriesPage{
		Repositories: nodesToModel(viewer.Repositories.Nodes),
		HasNextPage:  viewer.Repositories.PageInfo.HasNextPage,
	}
	if viewer.Repositories.PageInfo.EndCursor != nil {
		page.EndCursor = *viewer.Repositories.PageInfo.EndCursor
	}

	if input.IncludeOrganizations && viewer.Organizations != nil {
		for _, org := range viewer.Organizations.Nodes {
			if org == nil || org.Repositories == nil {
				continue
			}
			page.OrganizationRepositories = append(page.OrganizationRepositories, nodesToModel(org.Repositories.Nodes)...)
		}
	}

	logging.From(ctx).Debug("Queried viewer repositories",
		slog.String("viewer", viewer.Login),
		slog.Int("repos", len(page.Repositories)),
		slog.Int("org_repos", len(page.OrganizationRepositories)),
		slog.Bool("has_next_page", page.HasNextPage),
	)

	return page, nil
}

