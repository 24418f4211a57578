package verifier

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/mergegate/verify-pr-labels/env"
)

// TargetEvent is the one workflow trigger under which the pull request
// number must be passed in explicitly, since GITHUB_REF does not point at
// the merge ref for it.
const TargetEvent = "pull_request_target"

var prRefPattern = regexp.MustCompile(`refs/pull/([0-9]+)/merge`)

// ResolvePullRequestNumber determines the pull request number for this run,
// either from the configured hint (on pull_request_target) or from the git
// reference the workflow was triggered for.
func ResolvePullRequestNumber(run env.RunContext, hint string) (int, error) {
	if run.EventName == TargetEvent {
		number, err := strconv.Atoi(hint)
		if err != nil {
			return 0, fmt.Errorf("a valid pull request number input must be defined when triggering on %q, the pull request number passed was %q", TargetEvent, hint)
		}
		return number, nil
	}

	match := prRefPattern.FindStringSubmatch(run.Ref)
	if match == nil {
		return 0, fmt.Errorf("the pull request number could not be extracted from GITHUB_REF = %q", run.Ref)
	}
	number, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, fmt.Errorf("the pull request number could not be extracted from GITHUB_REF = %q", run.Ref)
	}
	return number, nil
}
