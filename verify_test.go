package verifier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	verifier "github.com/mergegate/verify-pr-labels"
	"github.com/mergegate/verify-pr-labels/env"
	"github.com/mergegate/verify-pr-labels/fakes"
	"github.com/mergegate/verify-pr-labels/pullrequest"
)

func createTestPR(number int, crossRepository bool) *pullrequest.PullRequest {
	head := "itsdalmo/test-repository"
	if crossRepository {
		head = "forker/test-repository"
	}
	return &pullrequest.PullRequest{
		Number:            number,
		Title:             "test pr title",
		HeadRepository:    head,
		BaseRepository:    "itsdalmo/test-repository",
		IsCrossRepository: crossRepository,
	}
}

func TestVerify(t *testing.T) {
	defaultRun := env.RunContext{
		Repository: "itsdalmo/test-repository",
		Ref:        "refs/pull/42/merge",
		EventName:  "pull_request",
	}

	tests := []struct {
		description string
		source      verifier.Source
		run         env.RunContext
		pull        *pullrequest.PullRequest
		labels      []string
		expectError string
	}{
		{
			description: "verify passes with a single valid label",
			source: verifier.Source{
				AccessToken: "oauthtoken",
				ValidLabels: []string{"feature parity", "no parity"},
			},
			run:    defaultRun,
			pull:   createTestPR(42, false),
			labels: []string{"feature parity"},
		},
		{
			description: "verify passes when one of several valid labels is present",
			source: verifier.Source{
				AccessToken: "oauthtoken",
				ValidLabels: []string{"a", "b"},
			},
			run:    defaultRun,
			pull:   createTestPR(42, false),
			labels: []string{"b", "unrelated"},
		},
		{
			description: "verify fails when an invalid label is present",
			source: verifier.Source{
				AccessToken:   "oauthtoken",
				ValidLabels:   []string{"feature parity"},
				InvalidLabels: []string{"blocked"},
			},
			run:         defaultRun,
			pull:        createTestPR(42, false),
			labels:      []string{"feature parity", "blocked"},
			expectError: "invalid labels",
		},
		{
			description: "verify fails when no valid label is present",
			source: verifier.Source{
				AccessToken: "oauthtoken",
				ValidLabels: []string{"feature parity", "no parity"},
			},
			run:         defaultRun,
			pull:        createTestPR(42, false),
			labels:      []string{"unrelated"},
			expectError: "must contain at least one of these labels",
		},
		{
			description: "verify fails when a no parity label accompanies another valid label",
			source: verifier.Source{
				AccessToken: "oauthtoken",
				ValidLabels: []string{"feature parity", "no parity"},
			},
			run:         defaultRun,
			pull:        createTestPR(42, false),
			labels:      []string{"no parity", "feature parity"},
			expectError: "cannot accompany other parity labels",
		},
		{
			description: "verify passes with a no parity label on its own",
			source: verifier.Source{
				AccessToken: "oauthtoken",
				ValidLabels: []string{"feature parity", "no parity"},
			},
			run:    defaultRun,
			pull:   createTestPR(42, false),
			labels: []string{"no parity"},
		},
		{
			description: "verify fails when a valid label targets the repository itself",
			source: verifier.Source{
				AccessToken: "oauthtoken",
				ValidLabels: []string{"target widget"},
			},
			run: env.RunContext{
				Repository: "org/widget",
				Ref:        "refs/pull/42/merge",
				EventName:  "pull_request",
			},
			pull:        createTestPR(42, false),
			labels:      []string{"target widget"},
			expectError: "not allowed to target this repo",
		},
		{
			description: "verify matches self targeting labels case insensitively",
			source: verifier.Source{
				AccessToken: "oauthtoken",
				ValidLabels: []string{"target WIDGET"},
			},
			run: env.RunContext{
				Repository: "org/Widget",
				Ref:        "refs/pull/42/merge",
				EventName:  "pull_request",
			},
			pull:        createTestPR(42, false),
			labels:      []string{"target WIDGET"},
			expectError: "not allowed to target this repo",
		},
		{
			description: "verify rejects forks on anything but pull_request_target",
			source: verifier.Source{
				AccessToken: "oauthtoken",
				ValidLabels: []string{"feature parity"},
			},
			run:         defaultRun,
			pull:        createTestPR(42, true),
			labels:      []string{"feature parity"},
			expectError: "PRs from forks",
		},
		{
			description: "verify accepts forks on pull_request_target",
			source: verifier.Source{
				AccessToken: "oauthtoken",
				ValidLabels: []string{"feature parity"},
				PRNumber:    "42",
			},
			run: env.RunContext{
				Repository: "itsdalmo/test-repository",
				Ref:        "refs/heads/main",
				EventName:  "pull_request_target",
			},
			pull:   createTestPR(42, true),
			labels: []string{"feature parity"},
		},
		{
			description: "verify fails on pull_request_target without a numeric pull request number",
			source: verifier.Source{
				AccessToken: "oauthtoken",
				ValidLabels: []string{"feature parity"},
				PRNumber:    "not-a-number",
			},
			run: env.RunContext{
				Repository: "itsdalmo/test-repository",
				Ref:        "refs/heads/main",
				EventName:  "pull_request_target",
			},
			pull:        createTestPR(42, true),
			labels:      []string{"feature parity"},
			expectError: "valid pull request number input must be defined",
		},
		{
			description: "verify fails when the git reference is not a merge ref",
			source: verifier.Source{
				AccessToken: "oauthtoken",
				ValidLabels: []string{"feature parity"},
			},
			run: env.RunContext{
				Repository: "itsdalmo/test-repository",
				Ref:        "refs/heads/main",
				EventName:  "pull_request",
			},
			pull:        createTestPR(42, false),
			labels:      []string{"feature parity"},
			expectError: "could not be extracted from GITHUB_REF",
		},
	}

	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			github := new(fakes.FakeGithub)

			github.GetRepositoryReturns(&pullrequest.Repository{FullName: tc.run.Repository}, nil)
			github.GetPullRequestReturns(tc.pull, nil)
			github.ListLabelsReturns(tc.labels, nil)

			input := verifier.VerifyRequest{Source: tc.source, Run: tc.run}
			err := verifier.Verify(input, github)

			if tc.expectError != "" {
				if assert.Error(t, err) {
					assert.Contains(t, err.Error(), tc.expectError)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestVerifyShortCircuits(t *testing.T) {
	t.Run("fork policy is checked before labels", func(t *testing.T) {
		github := new(fakes.FakeGithub)
		github.GetRepositoryReturns(&pullrequest.Repository{FullName: "itsdalmo/test-repository"}, nil)
		github.GetPullRequestReturns(createTestPR(42, true), nil)

		input := verifier.VerifyRequest{
			Source: verifier.Source{AccessToken: "oauthtoken", ValidLabels: []string{"feature parity"}},
			Run: env.RunContext{
				Repository: "itsdalmo/test-repository",
				Ref:        "refs/pull/42/merge",
				EventName:  "pull_request",
			},
		}
		err := verifier.Verify(input, github)

		assert.Error(t, err)
		assert.Equal(t, 0, github.ListLabelsCallCount())
	})

	t.Run("number resolution is checked before any lookup", func(t *testing.T) {
		github := new(fakes.FakeGithub)

		input := verifier.VerifyRequest{
			Source: verifier.Source{AccessToken: "oauthtoken", ValidLabels: []string{"feature parity"}},
			Run: env.RunContext{
				Repository: "itsdalmo/test-repository",
				Ref:        "refs/heads/main",
				EventName:  "pull_request",
			},
		}
		err := verifier.Verify(input, github)

		assert.Error(t, err)
		assert.Equal(t, 0, github.GetRepositoryCallCount())
		assert.Equal(t, 0, github.GetPullRequestCallCount())
	})
}
