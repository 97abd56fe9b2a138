package schema

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDLEQ(t *testing.T) {
	s, err := Parse(`dleq, (x), (A, B, G, H) : A = (G * x), B = (H * x)`)
	require.NoError(t, err)
	require.Equal(t, "dleq", s.Name)
	require.Equal(t, []string{"x"}, s.Secrets)
	require.Equal(t, []string{"A", "B", "G", "H"}, s.Publics)
	require.Len(t, s.Equations, 2)
	require.Equal(t, "A", s.Equations[0].LHS)
	require.Equal(t, []Term{{Point: "G", Scalar: "x"}}, s.Equations[0].Terms)
	require.Equal(t, "B", s.Equations[1].LHS)
	require.Equal(t, []Term{{Point: "H", Scalar: "x"}}, s.Equations[1].Terms)

	require.NoError(t, Validate(s))
}

func TestParsePedersenTwoSecretTwoEquation(t *testing.T) {
	s, err := Parse(`pedersen, (x, y), (A, B, G, H) : A = (G * x + H * y), B = (H * x)`)
	require.NoError(t, err)
	require.Equal(t, []string{"x", "y"}, s.Secrets)
	require.Len(t, s.Equations[0].Terms, 2)
	require.NoError(t, Validate(s))
}

func TestParseRejectsSyntaxErrors(t *testing.T) {
	_, err := Parse(`dleq (x), (A) : A = (A * x)`)
	require.Error(t, err)
}

func TestValidateRejectsUndeclaredNames(t *testing.T) {
	s, err := Parse(`bad, (x), (A, G) : A = (G * y)`)
	require.NoError(t, err)
	err = Validate(s)
	require.Error(t, err)
	require.Contains(t, err.Error(), `undeclared secret "y"`)
}

func TestValidateRejectsLHSNotPublic(t *testing.T) {
	s, err := Parse(`bad, (x), (G) : A = (G * x)`)
	require.NoError(t, err)
	err = Validate(s)
	require.Error(t, err)
	require.Contains(t, err.Error(), `left-hand side "A" is not a declared public`)
}

func TestValidateRejectsNameCollisionBetweenSecretsAndPublics(t *testing.T) {
	s, err := Parse(`bad, (x), (x, G) : x = (G * x)`)
	require.NoError(t, err)
	err = Validate(s)
	require.Error(t, err)
	require.Contains(t, err.Error(), `declared as both a secret and a public name`)
}

func TestValidateAggregatesMultipleErrors(t *testing.T) {
	s, err := Parse(`bad, (x), (A) : A = (G * y)`)
	require.NoError(t, err)
	err = Validate(s)
	require.Error(t, err)
	require.Contains(t, err.Error(), `undeclared public "G"`)
	require.Contains(t, err.Error(), `undeclared secret "y"`)
}

func TestValidateRejectsEmptyLists(t *testing.T) {
	s := &Schema{Name: "empty"}
	err := Validate(s)
	require.Error(t, err)
	require.Contains(t, err.Error(), "secret list must not be empty")
	require.Contains(t, err.Error(), "public list must not be empty")
	require.Contains(t, err.Error(), "must declare at least one equation")
}

func TestValidateAllowsRepeatedSecretWithinOneRHS(t *testing.T) {
	// spec.md §3: duplicate scalar names on a single RHS are permitted
	// and summed, not a validation error.
	s, err := Parse(`rep, (x), (A, G) : A = (G * x + G * x)`)
	require.NoError(t, err)
	require.NoError(t, Validate(s))
}
