package verifier

import (
	"errors"
	"strings"

	"github.com/mergegate/verify-pr-labels/env"
)

// Source represents the invocation parameters for a verification run.
type Source struct {
	AccessToken   string
	ValidLabels   []string
	InvalidLabels []string
	PRNumber      string
}

// SourceFromArgs builds a Source from the action's positional arguments:
// token, valid labels (csv), invalid labels (csv), pull request number and
// a trailing argument kept for compatibility with older workflow files.
func SourceFromArgs(args []string) (*Source, error) {
	if len(args) != 5 {
		return nil, errors.New("invalid number of arguments")
	}

	s := &Source{
		AccessToken:   args[0],
		ValidLabels:   splitLabels(args[1]),
		InvalidLabels: splitLabels(args[2]),
		PRNumber:      args[3],
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate the source configuration.
func (s *Source) Validate() error {
	if s.AccessToken == "" {
		return errors.New("a token must be provided")
	}
	return nil
}

// VerifyRequest ...
type VerifyRequest struct {
	Source Source
	Run    env.RunContext
}

func splitLabels(csv string) []string {
	var labels []string
	for _, l := range strings.Split(csv, ",") {
		labels = append(labels, strings.TrimSpace(l))
	}
	return labels
}
