package pullrequest

import (
	"strings"

	"k8s.io/apimachinery/pkg/util/sets"
)

// Classification holds the configured labels found on a pull request,
// in the order they appear on the pull request itself.
type Classification struct {
	Valid   []string
	Invalid []string
}

// Classify partitions the labels on a pull request against the configured
// valid and invalid label lists. A label present in both lists ends up in
// both subsets.
func Classify(labels, valid, invalid []string) Classification {
	validSet := sets.New[string](valid...)
	invalidSet := sets.New[string](invalid...)

	var c Classification
	for _, l := range labels {
		if validSet.Has(l) {
			c.Valid = append(c.Valid, l)
		}
		if invalidSet.Has(l) {
			c.Invalid = append(c.Invalid, l)
		}
	}
	return c
}

// NoParityConflict returns true if a "no parity" label is accompanied by any
// other valid label.
func (c Classification) NoParityConflict() bool {
	for _, l := range c.Valid {
		if strings.Contains(strings.ToLower(l), "no parity") {
			return len(c.Valid) > 1
		}
	}
	return false
}

// SelfReference returns the last valid label whose final word names the
// repository it is attached to, or "" if there is none. The match is
// case-insensitive and deliberately loose: the word only has to appear
// somewhere in the repository's full name.
func (c Classification) SelfReference(repository string) string {
	repo := strings.ToLower(repository)

	forbidden := ""
	for _, l := range c.Valid {
		words := strings.Fields(l)
		if len(words) == 0 {
			continue
		}
		if strings.Contains(repo, strings.ToLower(words[len(words)-1])) {
			forbidden = l
		}
	}
	return forbidden
}
