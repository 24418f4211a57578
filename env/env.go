package env

import (
	"fmt"
	"os"
)

// RunContext stores the workflow variables GitHub Actions sets for a single run
type RunContext struct {
	Repository string
	Ref        string
	EventName  string
}

// Read parses the env vars into a RunContext
func Read() (RunContext, error) {
	c := RunContext{}

	var err error
	if c.Repository, err = lookup("GITHUB_REPOSITORY"); err != nil {
		return c, err
	}
	if c.Ref, err = lookup("GITHUB_REF"); err != nil {
		return c, err
	}
	if c.EventName, err = lookup("GITHUB_EVENT_NAME"); err != nil {
		return c, err
	}

	return c, nil
}

func lookup(name string) (string, error) {
	value := os.Getenv(name)
	if value == "" {
		return "", fmt.Errorf("the environmental variable %s is empty", name)
	}
	return value, nil
}
