package githubapi

import (
	"time"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/octodash/pkg/domain/model"
	"github.com/m-mizutani/octodash/pkg/domain/types"
)

func repositoryFromREST(repo *github.Repository) *model.Repository {
	return &model.Repository{
		ID:              types.GitHubRepoID(repo.GetID()),
		Name:            repo.GetName(),
		FullName:        repo.GetFullName(),
		Description:     repo.GetDescription(),
		Private:         repo.GetPrivate(),
		HTMLURL:         repo.GetHTMLURL(),
		UpdatedAt:       repo.GetUpdatedAt().Time,
		PushedAt:        timestampToTime(repo.PushedAt),
		Language:        repo.Language,
		StargazersCount: repo.GetStargazersCount(),
		Owner: model.RepositoryOwner{
			Login:     repo.GetOwner().GetLogin(),
			AvatarURL: repo.GetOwner().GetAvatarURL(),
			Type:      types.NewOwnerType(repo.GetOwner().GetType()),
		},
	}
}

func workflowRunFromREST(run *github.WorkflowRun) *model.WorkflowRun {
	status, _ := types.NormalizeRunStatus(run.GetStatus())
	if status == "" {
		status = types.RunStatus(run.GetStatus())
	}

	var conclusion types.RunConclusion
	if status == types.RunStatusCompleted {
		conclusion = types.RunConclusion(run.GetConclusion())
	}

	return &model.WorkflowRun{
		ID:           run.GetID(),
		Name:         run.GetName(),
		HeadBranch:   run.GetHeadBranch(),
		HeadSHA:      run.GetHeadSHA(),
		Status:       status,
		Conclusion:   conclusion,
		WorkflowID:   run.GetWorkflowID(),
		HTMLURL:      run.GetHTMLURL(),
		CreatedAt:    run.GetCreatedAt().Time,
		UpdatedAt:    run.GetUpdatedAt().Time,
		RunStartedAt: timestampToTime(run.RunStartedAt),
		RunNumber:    run.GetRunNumber(),
		Event:        run.GetEvent(),
		Repository: model.RunRepository{
			Name:     run.GetRepository().GetName(),
			FullName: run.GetRepository().GetFullName(),
		},
		HeadCommit: model.HeadCommit{
			Message: run.GetHeadCommit().GetMessage(),
			Author: model.CommitAuthor{
				Name:  run.GetHeadCommit().GetAuthor().GetName(),
				Email: run.GetHeadCommit().GetAuthor().GetEmail(),
			},
		},
		Actor: model.Actor{
			Login:     run.GetActor().GetLogin(),
			AvatarURL: run.GetActor().GetAvatarURL(),
		},
	}
}

// timestampToTime keeps an absent upstream timestamp as nil so it encodes as null
func timestampToTime(ts *github.Timestamp) *time.Time {
	if ts == nil || ts.IsZero() {
		return nil
	}
	t := ts.Time
	return &t
}
