package verifier

import (
	"fmt"

	"github.com/mergegate/verify-pr-labels/pullrequest"
)

// Verify (business logic)
func Verify(request VerifyRequest, manager Github) error {
	number, err := ResolvePullRequestNumber(request.Run, request.Source.PRNumber)
	if err != nil {
		return err
	}
	fmt.Printf("Pull request number: %d\n", number)

	if _, err := manager.GetRepository(); err != nil {
		return fmt.Errorf("failed to get repository: %s", err)
	}

	pull, err := manager.GetPullRequest(number)
	if err != nil {
		return fmt.Errorf("failed to retrieve pull request: %s", err)
	}

	// A workflow triggered by a plain pull_request event runs with the
	// fork's read-only token, so forked pull requests are only verified
	// under pull_request_target.
	if pull.IsCrossRepository && request.Run.EventName != TargetEvent {
		return fmt.Errorf("PRs from forks are only supported when trigger on %q", TargetEvent)
	}

	labels, err := manager.ListLabels(number)
	if err != nil {
		return fmt.Errorf("failed to list labels: %s", err)
	}

	c := pullrequest.Classify(labels, request.Source.ValidLabels, request.Source.InvalidLabels)

	if len(c.Invalid) > 0 {
		return fmt.Errorf("this pull request contains the following invalid labels: %v", c.Invalid)
	}
	fmt.Println("This pull request does not contain invalid labels")

	if len(c.Valid) == 0 {
		return fmt.Errorf("this pull request must contain at least one of these labels: %v", request.Source.ValidLabels)
	}

	if c.NoParityConflict() {
		return fmt.Errorf(`a "no parity" label cannot accompany other parity labels: %v`, c.Valid)
	}

	if label := c.SelfReference(request.Run.Repository); label != "" {
		return fmt.Errorf("label is not allowed to target this repo: %s", label)
	}

	fmt.Printf("This pull request contains the following valid labels: %v\n", c.Valid)
	fmt.Println("All labels are OK in this pull request")
	return nil
}
