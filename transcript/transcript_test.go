package transcript

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/csproof/sigma/internal/suite"
)

func TestDeterministic(t *testing.T) {
	s := suite.Default()
	rng := suite.RandomStream()
	p := s.Group.Point().Pick(rng)
	q := s.Group.Point().Pick(rng)

	c1 := New(s)
	require.NoError(t, c1.Absorb(p))
	require.NoError(t, c1.Absorb(q))
	ch1 := c1.Challenge(s.Group)

	c2 := New(s)
	require.NoError(t, c2.Absorb(p))
	require.NoError(t, c2.Absorb(q))
	ch2 := c2.Challenge(s.Group)

	require.True(t, ch1.Equal(ch2))
}

func TestOrderSensitive(t *testing.T) {
	s := suite.Default()
	rng := suite.RandomStream()
	p := s.Group.Point().Pick(rng)
	q := s.Group.Point().Pick(rng)

	c1 := New(s)
	require.NoError(t, c1.Absorb(p))
	require.NoError(t, c1.Absorb(q))
	ch1 := c1.Challenge(s.Group)

	c2 := New(s)
	require.NoError(t, c2.Absorb(q))
	require.NoError(t, c2.Absorb(p))
	ch2 := c2.Challenge(s.Group)

	require.False(t, ch1.Equal(ch2))
}

func TestLabelChangesChallenge(t *testing.T) {
	s := suite.Default()
	rng := suite.RandomStream()
	p := s.Group.Point().Pick(rng)

	unlabeled := New(s)
	require.NoError(t, unlabeled.Absorb(p))
	ch1 := unlabeled.Challenge(s.Group)

	labeled := New(s, WithLabel("dleq"))
	require.NoError(t, labeled.Absorb(p))
	ch2 := labeled.Challenge(s.Group)

	require.False(t, ch1.Equal(ch2))
}

func TestBitFlipSensitive(t *testing.T) {
	s := suite.Default()
	rng := suite.RandomStream()
	p := s.Group.Point().Pick(rng)

	enc, err := p.MarshalBinary()
	require.NoError(t, err)
	flipped := s.Group.Point()
	flippedEnc := append([]byte(nil), enc...)
	flippedEnc[0] ^= 0x01
	// Not every single bit flip produces a valid canonical point
	// encoding; when it does, the resulting challenge must differ.
	if err := flipped.UnmarshalBinary(flippedEnc); err != nil {
		t.Skip("flipped encoding is not a valid point under this group")
	}

	c1 := New(s)
	require.NoError(t, c1.Absorb(p))
	ch1 := c1.Challenge(s.Group)

	c2 := New(s)
	require.NoError(t, c2.Absorb(flipped))
	ch2 := c2.Challenge(s.Group)

	require.False(t, ch1.Equal(ch2))
}
