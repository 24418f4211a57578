//go:build tools
// +build tools

package verifier

import (
	_ "github.com/maxbrunsfeld/counterfeiter/v6"
)
