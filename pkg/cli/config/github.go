package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octodash/pkg/domain/types"
	"github.com/m-mizutani/octodash/pkg/infra/githubapi"
	"github.com/urfave/cli/v3"
)

type GitHub struct {
	token      types.GitHubToken `masq:"secret"`
	baseURL    string
	graphQLURL string
	maxRPS     float64
	burst      int64
}

func (x *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub token (personal access token or OAuth token)",
			Category:    "GitHub",
			Destination: (*string)(&x.token),
			Sources:     cli.EnvVars("OCTODASH_GITHUB_TOKEN", "GITHUB_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "github-base-url",
			Usage:       "GitHub REST API base URL",
			Category:    "GitHub",
			Value:       "https://api.github.com/",
			Destination: &x.baseURL,
			Sources:     cli.EnvVars("OCTODASH_GITHUB_BASE_URL"),
		},
		&cli.StringFlag{
			Name:        "github-graphql-url",
			Usage:       "GitHub GraphQL endpoint, relative to the base URL or absolute",
			Category:    "GitHub",
			Value:       "graphql",
			Destination: &x.graphQLURL,
			Sources:     cli.EnvVars("OCTODASH_GITHUB_GRAPHQL_URL"),
		},
		&cli.FloatFlag{
			Name:        "github-max-rps",
			Usage:       "Upper bound of GitHub API calls per second (0 means unlimited)",
			Category:    "GitHub",
			Destination: &x.maxRPS,
			Sources:     cli.EnvVars("OCTODASH_GITHUB_MAX_RPS"),
		},
		&cli.Int64Flag{
			Name:        "github-burst",
			Usage:       "Burst size of GitHub API calls when max rps is set",
			Category:    "GitHub",
			Value:       5,
			Destination: &x.burst,
			Sources:     cli.EnvVars("OCTODASH_GITHUB_BURST"),
		},
	}
}

func (x *GitHub) NewClient() (*githubapi.Client, error) {
	if _, err := githubapi.ParseBaseURL(x.baseURL); err != nil {
		return nil, goerr.Wrap(err, "invalid --github-base-url")
	}

	return githubapi.New(
		githubapi.WithBaseURL(x.baseURL),
		githubapi.WithGraphQLURL(x.graphQLURL),
		githubapi.WithRateLimit(x.maxRPS, int(x.burst)),
	), nil
}

func (x *GitHub) Token() types.GitHubToken {
	return x.token
}

func (x GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("Token.len", len(x.token)),
		slog.String("BaseURL", x.baseURL),
		slog.String("GraphQLURL", x.graphQLURL),
		slog.Float64("MaxRPS", x.maxRPS),
		slog.Int64("Burst", x.burst),
	)
}
