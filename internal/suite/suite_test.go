package suite

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultSchemeUniqueEncoding(t *testing.T) {
	s := Default()
	checkUniqueEncoding(t, s)
}

func TestBLS12381G1SchemeUniqueEncoding(t *testing.T) {
	s := BLS12381G1()
	checkUniqueEncoding(t, s)
}

func TestDefaultWithBlake2bSharesGroupWithDefault(t *testing.T) {
	a := Default()
	b := DefaultWithBlake2b()
	require.Equal(t, a.Group.String(), b.Group.String())
	require.NotEqual(t, a.Name, b.Name)
}

// checkUniqueEncoding samples distinct group elements and checks that no
// two distinct elements share a compressed encoding, the precondition
// spec.md §9 requires of whichever concrete group a Scheme binds.
func checkUniqueEncoding(t *testing.T, s *Scheme) {
	t.Helper()

	rng := RandomStream()
	seen := make(map[string]bool)
	for i := 0; i < 64; i++ {
		p := s.Group.Point().Pick(rng)
		enc, err := p.MarshalBinary()
		require.NoError(t, err)
		key := string(enc)
		require.False(t, seen[key], "duplicate compressed encoding observed")
		seen[key] = true

		roundTrip := s.Group.Point()
		require.NoError(t, roundTrip.UnmarshalBinary(enc))
		require.True(t, p.Equal(roundTrip))
	}
}
