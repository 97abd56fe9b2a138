package schema

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Validate checks schema well-formedness at compile time (spec.md §3,
// §7): every name used is declared, no name is declared twice, no name
// is shared between the secret and public namespaces, every equation's
// left-hand side is a declared public, and neither the secret nor the
// public list is empty. Unlike most single-error Go validation, Validate
// collects every violation it finds rather than stopping at the first,
// because schema authors typically fix several mistakes in one pass —
// the same reason the teacher aggregates multiple broadcast-validation
// errors with multierror.Append before returning.
func Validate(s *Schema) error {
	var result *multierror.Error

	if len(s.Secrets) == 0 {
		result = multierror.Append(result, fmt.Errorf("schema %q: secret list must not be empty", s.Name))
	}
	if len(s.Publics) == 0 {
		result = multierror.Append(result, fmt.Errorf("schema %q: public list must not be empty", s.Name))
	}

	secretSet := make(map[string]int, len(s.Secrets))
	for _, name := range s.Secrets {
		secretSet[name]++
	}
	for name, count := range secretSet {
		if count > 1 {
			result = multierror.Append(result, fmt.Errorf("schema %q: secret %q declared more than once", s.Name, name))
		}
	}

	publicSet := make(map[string]int, len(s.Publics))
	for _, name := range s.Publics {
		publicSet[name]++
	}
	for name, count := range publicSet {
		if count > 1 {
			result = multierror.Append(result, fmt.Errorf("schema %q: public %q declared more than once", s.Name, name))
		}
	}

	for name := range secretSet {
		if publicSet[name] > 0 {
			result = multierror.Append(result, fmt.Errorf("schema %q: %q is declared as both a secret and a public name", s.Name, name))
		}
	}

	if len(s.Equations) == 0 {
		result = multierror.Append(result, fmt.Errorf("schema %q: must declare at least one equation", s.Name))
	}

	for _, eq := range s.Equations {
		if publicSet[eq.LHS] == 0 {
			result = multierror.Append(result, fmt.Errorf("schema %q: equation left-hand side %q is not a declared public", s.Name, eq.LHS))
		}
		if len(eq.Terms) == 0 {
			result = multierror.Append(result, fmt.Errorf("schema %q: equation %q has an empty right-hand side", s.Name, eq.LHS))
		}
		for _, term := range eq.Terms {
			if publicSet[term.Point] == 0 {
				result = multierror.Append(result, fmt.Errorf("schema %q: equation %q references undeclared public %q", s.Name, eq.LHS, term.Point))
			}
			if secretSet[term.Scalar] == 0 {
				result = multierror.Append(result, fmt.Errorf("schema %q: equation %q references undeclared secret %q", s.Name, eq.LHS, term.Scalar))
			}
		}
	}

	return result.ErrorOrNil()
}
