package verifier

import (
	"context"
	"errors"
	"strings"

	"github.com/google/go-github/github"
	"github.com/shurcooL/githubv4"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"

	"github.com/mergegate/verify-pr-labels/pullrequest"
)

// Github for testing purposes.
//
//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -o fakes/fake_github.go . Github
type Github interface {
	GetRepository() (*pullrequest.Repository, error)
	GetPullRequest(number int) (*pullrequest.PullRequest, error)
	ListLabels(number int) ([]string, error)
}

// GithubClient for handling requests to the Github V3 and V4 APIs.
type GithubClient struct {
	ctx        context.Context
	V3         *github.Client
	V4         *githubv4.Client
	Owner      string
	Repository string
}

// NewGithubClient ...
func NewGithubClient(ctx context.Context, s *Source, repository string) (*GithubClient, error) {
	owner, repository, err := parseRepository(repository)
	if err != nil {
		return nil, err
	}

	client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: s.AccessToken},
	))

	return &GithubClient{
		ctx:        ctx,
		V3:         github.NewClient(client),
		V4:         githubv4.NewClient(client),
		Owner:      owner,
		Repository: repository,
	}, nil
}

// GetRepository resolves the configured repository by name.
func (m *GithubClient) GetRepository() (*pullrequest.Repository, error) {
	repo, _, err := m.V3.Repositories.Get(m.ctx, m.Owner, m.Repository)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"owner": m.Owner,
			"repo":  m.Repository,
		}).Warn("failed to get repository")
		return nil, err
	}
	return &pullrequest.Repository{FullName: repo.GetFullName()}, nil
}

// GetPullRequest fetches a pull request by number.
func (m *GithubClient) GetPullRequest(number int) (*pullrequest.PullRequest, error) {
	pull, _, err := m.V3.PullRequests.Get(m.ctx, m.Owner, m.Repository, number)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"owner": m.Owner,
			"repo":  m.Repository,
			"prNum": number,
		}).Warn("failed to get pull request")
		return nil, err
	}

	p := &pullrequest.PullRequest{
		Number:         number,
		Title:          pull.GetTitle(),
		URL:            pull.GetHTMLURL(),
		HeadRepository: pull.GetHead().GetRepo().GetFullName(),
		BaseRepository: pull.GetBase().GetRepo().GetFullName(),
	}
	p.IsCrossRepository = p.HeadRepository != p.BaseRepository
	return p, nil
}

// ListLabels lists the names of the labels currently set on a pull request.
func (m *GithubClient) ListLabels(number int) ([]string, error) {
	var query struct {
		Repository struct {
			PullRequest struct {
				Labels struct {
					Edges []struct {
						Node struct {
							LabelObject
						}
					}
					PageInfo struct {
						EndCursor   githubv4.String
						HasNextPage bool
					}
				} `graphql:"labels(first:$labelsFirst,after:$labelsCursor)"`
			} `graphql:"pullRequest(number:$prNumber)"`
		} `graphql:"repository(owner:$repositoryOwner,name:$repositoryName)"`
	}

	vars := map[string]interface{}{
		"repositoryOwner": githubv4.String(m.Owner),
		"repositoryName":  githubv4.String(m.Repository),
		"prNumber":        githubv4.Int(number),
		"labelsFirst":     githubv4.Int(100),
		"labelsCursor":    (*githubv4.String)(nil),
	}

	var labels []string
	for {
		if err := m.V4.Query(m.ctx, &query, vars); err != nil {
			return nil, err
		}
		for _, l := range query.Repository.PullRequest.Labels.Edges {
			labels = append(labels, l.Node.Name)
		}
		if !query.Repository.PullRequest.Labels.PageInfo.HasNextPage {
			break
		}
		vars["labelsCursor"] = query.Repository.PullRequest.Labels.PageInfo.EndCursor
	}
	return labels, nil
}

// LabelObject represents the GraphQL label node.
// https://developer.github.com/v4/object/label
type LabelObject struct {
	Name string
}

func parseRepository(s string) (string, string, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 2 {
		return "", "", errors.New("malformed repository")
	}
	return parts[0], parts[1], nil
}
