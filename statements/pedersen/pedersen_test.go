package pedersen

import (
	"testing"

	"github.com/drand/kyber"
	"github.com/stretchr/testify/require"

	"github.com/csproof/sigma/internal/protocol"
	"github.com/csproof/sigma/internal/suite"
	"github.com/csproof/sigma/wire"
)

func newScenario(t *testing.T) (*suite.Scheme, Publics, Secrets) {
	t.Helper()
	scheme := suite.Default()
	group := scheme.Group
	rng := suite.RandomStream()

	x := group.Scalar().Pick(rng)
	y := group.Scalar().Pick(rng)
	g := group.Point().Pick(rng)
	h := group.Point().Pick(rng)

	a := group.Point().Add(group.Point().Mul(x, g), group.Point().Mul(y, h))
	b := group.Point().Mul(x, h)

	return scheme, Publics{A: a, B: b, G: g, H: h}, Secrets{X: x, Y: y}
}

func TestCompletenessTwoSecretsTwoEquations(t *testing.T) {
	scheme, publics, secrets := newScenario(t)
	rng := suite.RandomStream()

	proof := Create(scheme, rng, publics, secrets)
	require.NoError(t, proof.Verify(scheme, publics))
}

// TestZeroingYIsRejected exercises scenario 6's edge case: a prover that
// zeroes out its second secret no longer satisfies A = G*x + H*y for the
// original public A, so the proof must fail to verify.
func TestZeroingYIsRejected(t *testing.T) {
	scheme, publics, secrets := newScenario(t)
	rng := suite.RandomStream()

	secrets.Y = scheme.Group.Scalar().Zero()

	proof := Create(scheme, rng, publics, secrets)
	require.ErrorIs(t, proof.Verify(scheme, publics), protocol.ErrVerificationFailed)
}

func TestWrongXIsRejected(t *testing.T) {
	scheme, publics, secrets := newScenario(t)
	rng := suite.RandomStream()

	secrets.X = scheme.Group.Scalar().Pick(rng)

	proof := Create(scheme, rng, publics, secrets)
	require.ErrorIs(t, proof.Verify(scheme, publics), protocol.ErrVerificationFailed)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	scheme, publics, secrets := newScenario(t)
	rng := suite.RandomStream()

	proof := Create(scheme, rng, publics, secrets)
	data, err := proof.Encode()
	require.NoError(t, err)
	require.Len(t, proof.Responses, 2)

	decoded, err := Decode(scheme.Group, data)
	require.NoError(t, err)
	require.NoError(t, decoded.Verify(scheme, publics))
}

// TestDecodeRejectsWrongResponseCount confirms Decode enforces this
// statement's declared arity (two secrets) even on well-formed CBOR that
// happens to carry a different number of responses, such as a schnorr
// (single-secret) proof's encoding.
func TestDecodeRejectsWrongResponseCount(t *testing.T) {
	scheme := suite.Default()
	group := scheme.Group
	rng := suite.RandomStream()

	x := group.Scalar().Pick(rng)
	challenge := group.Scalar().Pick(rng)
	data, err := wire.EncodeProof(challenge, []kyber.Scalar{x})
	require.NoError(t, err)

	_, err = Decode(group, data)
	require.Error(t, err)
}
