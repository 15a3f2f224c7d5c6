package infra_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/octodash/pkg/domain/interfaces"
	"github.com/m-mizutani/octodash/pkg/domain/mock"
	"github.com/m-mizutani/octodash/pkg/infra"
	"github.com/m-mizutani/octodash/pkg/infra/githubapi"
)

func TestNew(t *testing.T) {
	t.Run("GitHub is nil without configuration", func(t *testing.T) {
		clients := infra.New()
		gt.V(t, clients.GitHub()).Equal(nil)
	})

	t.Run("WithGitHub option sets GitHub client", func(t *testing.T) {
		mockGH := &mock.GitHubMock{}
		clients := infra.New(infra.WithGitHub(mockGH))
		gt.V(t, clients.GitHub()).Equal(interfaces.GitHub(mockGH))
	})

	t.Run("latest option wins", func(t *testing.T) {
		mockGH := &mock.GitHubMock{}
		apiClient := githubapi.New()
		clients := infra.New(
			infra.WithGitHub(mockGH),
			infra.WithGitHub(apiClient),
		)
		gt.V(t, clients.GitHub()).Equal(interfaces.GitHub(apiClient))
	})
}
