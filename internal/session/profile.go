// Package session ties one learner to the engine and the store: the login
// profile, the learning walk, the adaptive practice loop, and the snapshot
// and event persistence around them.
package session

import (
	"fmt"
	"strings"
)

// Profile identifies a learner. Name is the persistence key; age and
// gender come from the login form and are informational.
type Profile struct {
	Name   string
	Age    int
	Gender string
}

// Validate checks the profile fields, returning a single combined error
// listing every problem.
func (p Profile) Validate() error {
	var errs []string

	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, "name is required")
	}
	if p.Age < 0 || p.Age > 120 {
		errs = append(errs, fmt.Sprintf("age %d out of range", p.Age))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid profile:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// Key returns the normalized learner key used for persistence.
func (p Profile) Key() string {
	return strings.ToLower(strings.TrimSpace(p.Name))
}
