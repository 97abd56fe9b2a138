// Package suite bundles the external collaborators spec.md §1 delegates
// out of this system's scope: a constant-time prime-order group and
// scalar library, a 512-bit collision-resistant hash, and a CSPRNG
// binding. It mirrors the Scheme-bundling pattern the teacher repo uses
// to switch between concrete curve instantiations (crypto/schemes.go)
// and the pluggable-group-constant pattern it uses for a single curve
// (key/curve.go), generalized here to any kyber.Group.
package suite

import (
	"crypto/cipher"
	"crypto/sha512"
	"hash"

	"github.com/drand/kyber"
	bls12381 "github.com/drand/kyber-bls12381"
	"github.com/drand/kyber/group/edwards25519"
	"github.com/drand/kyber/util/random"
	"golang.org/x/crypto/blake2b"
)

// Scheme bundles the group a statement is compiled against together with
// the hash used to derive the Fiat-Shamir challenge. Neither this system
// nor the statements it generates pick a curve on their own behalf: a
// Scheme is always supplied to Create/Verify by the caller, just as
// spec.md treats the group library as an external collaborator.
type Scheme struct {
	// Name identifies the scheme, for diagnostics only; never absorbed
	// into a transcript (see transcript.WithLabel for schema-name domain
	// separation, which is a distinct, opt-in mechanism).
	Name string
	// Group is the prime-order group statements are compiled against.
	Group kyber.Group
	// TranscriptHash produces the 512-bit hash used to derive a
	// challenge scalar from a transcript (spec.md §4.2).
	TranscriptHash func() hash.Hash
}

// Default returns the baseline scheme: kyber's Ed25519-flavored prime
// order group (the closest concrete binding the ecosystem's group
// library offers to the Decaf-quotient group spec.md §1 names) with a
// SHA-512 transcript hash.
//
// Precondition this scheme must uphold (spec.md §9 Open Question): every
// kyber.Point produced by Group has a unique MarshalBinary encoding. This
// holds for kyber's edwards25519 group; see suite_test.go.
func Default() *Scheme {
	return &Scheme{
		Name:           "ed25519-sha512",
		Group:          edwards25519.NewBlakeSHA256Ed25519(),
		TranscriptHash: sha512.New,
	}
}

// DefaultWithBlake2b is Default with the alternate transcript hash drand
// itself uses for identity hashing in crypto/schemes.go (blake2b), to
// exercise a second 512-bit hash binding rather than hard-coding SHA-512.
func DefaultWithBlake2b() *Scheme {
	return &Scheme{
		Name:           "ed25519-blake2b512",
		Group:          edwards25519.NewBlakeSHA256Ed25519(),
		TranscriptHash: blake2b512,
	}
}

// BLS12381G1 returns an alternate scheme compiled over the G1 group of
// the BLS12-381 pairing, to demonstrate that the protocol runtime
// (internal/protocol) and the generated statements are generic over any
// supplied kyber.Group, not hard-coded to a single curve.
func BLS12381G1() *Scheme {
	pairing := bls12381.NewBLS12381Suite()
	return &Scheme{
		Name:           "bls12381-g1-sha512",
		Group:          pairing.G1(),
		TranscriptHash: sha512.New,
	}
}

func blake2b512() hash.Hash {
	h, _ := blake2b.New512(nil)
	return h
}

// RandomStream returns the CSPRNG binding (spec.md §1(iii)): a
// cipher.Stream backed by crypto/rand, the same stream kyber-based
// protocols throughout the teacher repo pass to Scalar.Pick. Callers
// that need a seeded/deterministic stream (tests, scenario 3's x=0 /
// x=1 edge cases) may construct their own cipher.Stream instead; Create
// never constructs one itself, matching spec.md §5's "RNG is borrowed
// mutably by prove" ownership rule.
func RandomStream() cipher.Stream {
	return random.New()
}
