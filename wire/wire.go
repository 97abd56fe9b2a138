// Package wire is the external serialization codec collaborator of
// spec.md §1(iv)/§6: it encodes a Proof's challenge and responses as a
// compact, self-describing binary form and decodes them back. The
// original Rust implementation this repo is grounded on used packed
// CBOR (serde_cbor::ser::to_vec_packed); this package uses the same
// framing via github.com/fxamacker/cbor/v2, a direct dependency of
// vocdoni-davinci-node in the retrieval pack.
//
// Every generated statement's Proof.Encode method and package-level
// Decode function delegate to EncodeProof/DecodeProof; the shape of a Proof (one challenge scalar,
// a declared-order slice of response scalars) is identical across every
// compiled statement, so these helpers need no per-statement
// specialization.
package wire

import (
	"fmt"

	"github.com/drand/kyber"
	"github.com/fxamacker/cbor/v2"
)

// wireProof is the on-the-wire shape: a two-element CBOR array of
// [challenge bytes, [response bytes, ...]], the direct analogue of
// concatenating the challenge's canonical encoding with each response's
// canonical encoding in declared secret order.
type wireProof struct {
	_         struct{} `cbor:",toarray"`
	Challenge []byte
	Responses [][]byte
}

// EncodeProof serializes challenge and responses (in declared secret
// order) to bytes.
func EncodeProof(challenge kyber.Scalar, responses []kyber.Scalar) ([]byte, error) {
	challengeBytes, err := challenge.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("wire: marshal challenge: %w", err)
	}

	responseBytes := make([][]byte, len(responses))
	for i, r := range responses {
		b, err := r.MarshalBinary()
		if err != nil {
			return nil, fmt.Errorf("wire: marshal response %d: %w", i, err)
		}
		responseBytes[i] = b
	}

	return cbor.Marshal(wireProof{Challenge: challengeBytes, Responses: responseBytes})
}

// DecodeProof parses bytes produced by EncodeProof back into a challenge
// scalar and a slice of response scalars, allocating both via group.
// DecodeProof rejects truncated or extended byte strings according to
// the CBOR codec's own rules (spec.md §6) and never returns a partially
// populated result on error.
func DecodeProof(group kyber.Group, data []byte) (kyber.Scalar, []kyber.Scalar, error) {
	var wp wireProof
	if err := cbor.Unmarshal(data, &wp); err != nil {
		return nil, nil, fmt.Errorf("wire: decode: %w", err)
	}

	challenge := group.Scalar()
	if err := challenge.UnmarshalBinary(wp.Challenge); err != nil {
		return nil, nil, fmt.Errorf("wire: unmarshal challenge: %w", err)
	}

	responses := make([]kyber.Scalar, len(wp.Responses))
	for i, b := range wp.Responses {
		s := group.Scalar()
		if err := s.UnmarshalBinary(b); err != nil {
			return nil, nil, fmt.Errorf("wire: unmarshal response %d: %w", i, err)
		}
		responses[i] = s
	}

	return challenge, responses, nil
}
