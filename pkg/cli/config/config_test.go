package config_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/octodash/pkg/cli/config"
	"github.com/m-mizutani/octodash/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

func flagNames(flags []cli.Flag) map[string]bool {
	names := make(map[string]bool)
	for _, flag := range flags {
		names[flag.Names()[0]] = true
	}
	return names
}

func TestGitHubFlags(t *testing.T) {
	var github config.GitHub
	names := flagNames(github.Flags())

	gt.True(t, names["github-token"])
	gt.True(t, names["github-base-url"])
	gt.True(t, names["github-graphql-url"])
	gt.True(t, names["github-max-rps"])
}

func TestGitHubToken(t *testing.T) {
	var github config.GitHub
	cmd := &cli.Command{
		Name:  "test",
		Flags: github.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			return nil
		},
	}
	gt.NoError(t, cmd.Run(context.Background(), []string{"test", "--github-token", "gho_secret"}))

	gt.V(t, string(github.Token())).Equal("gho_secret")
	client, err := github.NewClient()
	gt.NoError(t, err)
	gt.True(t, client != nil)

	// the token itself never appears in the log value
	value := github.LogValue()
	gt.V(t, value.Kind()).Equal(slog.KindGroup)
	for _, attr := range value.Group() {
		gt.V(t, attr.Value.String()).NotEqual("gho_secret")
	}
}

func TestGitHubNewClientInvalidBaseURL(t *testing.T) {
	var github config.GitHub
	cmd := &cli.Command{
		Name:  "test",
		Flags: github.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			return nil
		},
	}
	gt.NoError(t, cmd.Run(context.Background(), []string{"test", "--github-base-url", "ghe.example.com/api/v3"}))

	client, err := github.NewClient()
	gt.Error(t, err)
	gt.True(t, errors.Is(err, types.ErrInvalidOption))
	gt.True(t, client == nil)
}

func TestEngineOptions(t *testing.T) {
	var engine config.Engine
	cmd := &cli.Command{
		Name:  "test",
		Flags: engine.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			return nil
		},
	}
	gt.NoError(t, cmd.Run(context.Background(), []string{"test", "--run-batch-size", "2", "--call-timeout", "3s"}))

	gt.A(t, engine.Options()).Length(8)
	gt.V(t, flagNames(engine.Flags())["probe-batch-delay"]).Equal(true)
}
