// Package protocol is the Fiat-Shamir-transformed Sigma-protocol runtime
// described in spec.md §2 and §4.3. It is the handful of primitives every
// codegen-emitted statement module calls, in a fixed, fully-unrolled
// sequence baked into the generated Go source; this package itself does
// not parse a schema or branch on its shape at proof time.
//
// Soundness of this Fiat-Shamir variant for multi-equation statements
// sharing secrets across equations is, per the original source this repo
// is grounded on, unverified; nothing in this package or repo asserts a
// soundness proof.
package protocol

import (
	"errors"

	"github.com/drand/kyber"
)

// ErrVerificationFailed is the sole runtime error Verify can return. It
// carries no information about which equation disagreed: a valid proof
// satisfies every equation jointly via one shared challenge, and leaking
// per-equation pass/fail would violate spec.md §7.
var ErrVerificationFailed = errors.New("protocol: verification failed")

// MultiplyAdd computes z = c*x + r using the group's scalar field
// arithmetic, the response-computation primitive of spec.md §4.3 step 4.
// It performs no branch on the value of x or r.
func MultiplyAdd(group kyber.Group, c, x, r kyber.Scalar) kyber.Scalar {
	z := group.Scalar()
	z.Mul(c, x)
	z.Add(z, r)
	return z
}

// RecomputeCommitment applies the rearranged verification identity of
// spec.md §4.3 step 1: given the evaluation of the equation's right-hand
// side at the responses (evaluated == C_i(publics, z)), and the
// statement's declared challenge and left-hand-side point, it returns
// t'_i = evaluated - c*lhs, which equals the prover's original
// commitment t_i exactly when the proof is valid.
func RecomputeCommitment(group kyber.Group, evaluated kyber.Point, challenge kyber.Scalar, lhs kyber.Point) kyber.Point {
	scaled := group.Point().Mul(challenge, lhs)
	out := group.Point()
	out.Sub(evaluated, scaled)
	return out
}

// ChallengesEqual reports whether two challenge scalars are equal. The
// challenge is public (it is transmitted in the Proof itself), so a
// variable-time comparison would not leak secret information; this
// still delegates to the group library's own Scalar.Equal for
// uniformity with every other scalar comparison in this codebase, per
// spec.md §4.3 step 3.
func ChallengesEqual(a, b kyber.Scalar) bool {
	return a.Equal(b)
}
