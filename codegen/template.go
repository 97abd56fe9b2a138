package codegen

import "text/template"

// moduleTemplate renders a fully unrolled Create/Verify pair for one
// compiled statement. Every loop it contains ranges over the *schema's*
// slices at code-generation time (range over Go template data); none of
// it survives into the generated source as a runtime loop over secret-
// or publics-keyed data, matching spec.md §4.1's "no per-term dispatch
// at proof time" requirement.
var moduleTemplate = template.Must(template.New("module").Parse(`// Code generated by codegen from schema {{printf "%q" .Name}}. DO NOT EDIT.

package {{.Package}}

import (
	"crypto/cipher"
	"fmt"

	"github.com/drand/kyber"

	"github.com/csproof/sigma/internal/protocol"
	"github.com/csproof/sigma/internal/suite"
	"github.com/csproof/sigma/transcript"
	"github.com/csproof/sigma/wire"
)

// Publics holds the public points of the {{printf "%q" .Name}} statement, in declared order.
type Publics struct {
{{- range .Publics}}
	{{.Field}} kyber.Point
{{- end}}
}

// Secrets holds the secret scalars of the {{printf "%q" .Name}} statement, in declared order.
// Secrets is a borrowed view: Create never copies the underlying scalars
// into the returned Proof.
type Secrets struct {
{{- range .Secrets}}
	{{.Field}} kyber.Scalar
{{- end}}
}

// Proof is a non-interactive zero-knowledge proof for the {{printf "%q" .Name}} statement.
// Responses is ordered to match the schema's declared secret order:
{{- range $i, $s := .Secrets}} {{$s.Field}} at index {{$i}};{{end}}
type Proof struct {
	Challenge kyber.Scalar
	Responses []kyber.Scalar
}

// Create produces a Proof that secrets satisfy publics under the
// {{printf "%q" .Name}} statement. rand is borrowed for the duration of
// the call and never retained; secrets is never copied into the
// returned Proof.
func Create(scheme *suite.Scheme, rand cipher.Stream, publics Publics, secrets Secrets) *Proof {
	group := scheme.Group

{{range .Secrets}}	r{{.Field}} := group.Scalar().Pick(rand)
{{end}}
{{range .Equations}}{{range .CommitLines}}	{{.}}
{{end}}{{end}}
	tr := transcript.New(scheme{{if $.Label}}, transcript.WithLabel({{printf "%q" $.Name}}){{end}})
{{range .Publics}}	_ = tr.Absorb(publics.{{.Field}})
{{end}}{{range .Equations}}	_ = tr.Absorb(t{{.LHSField}})
{{end}}
	challenge := tr.Challenge(group)

{{range .Secrets}}	z{{.Field}} := protocol.MultiplyAdd(group, challenge, secrets.{{.Field}}, r{{.Field}})
{{end}}
	return &Proof{
		Challenge: challenge,
		Responses: []kyber.Scalar{ {{- range $i, $s := .Secrets}}{{if $i}}, {{end}}z{{$s.Field}}{{end -}} },
	}
}

// Verify reports whether proof is a valid proof of the {{printf "%q" .Name}}
// statement for publics. It returns protocol.ErrVerificationFailed on any
// rejection; no information about which equation disagreed is exposed.
func (proof *Proof) Verify(scheme *suite.Scheme, publics Publics) error {
	if len(proof.Responses) != {{len .Secrets}} {
		return protocol.ErrVerificationFailed
	}
	group := scheme.Group

{{range $i, $s := .Secrets}}	z{{$s.Field}} := proof.Responses[{{$i}}]
{{end}}
{{range .Equations}}{{range .EvalLines}}	{{.}}
{{end}}	t{{.LHSField}}Prime := protocol.RecomputeCommitment(group, eval{{.LHSField}}, proof.Challenge, publics.{{.LHSField}})
{{end}}
	tr := transcript.New(scheme{{if .Label}}, transcript.WithLabel({{printf "%q" .Name}}){{end}})
{{range .Publics}}	_ = tr.Absorb(publics.{{.Field}})
{{end}}{{range .Equations}}	_ = tr.Absorb(t{{.LHSField}}Prime)
{{end}}
	challenge := tr.Challenge(group)

	if !protocol.ChallengesEqual(challenge, proof.Challenge) {
		return protocol.ErrVerificationFailed
	}
	return nil
}

// Encode serializes proof to its wire representation (challenge followed
// by each response, in declared secret order).
func (proof *Proof) Encode() ([]byte, error) {
	return wire.EncodeProof(proof.Challenge, proof.Responses)
}

// Decode parses data (as produced by Encode) into a Proof, allocating
// scalars from group. It rejects truncated or extended byte strings
// according to the wire codec's own rules.
func Decode(group kyber.Group, data []byte) (*Proof, error) {
	challenge, responses, err := wire.DecodeProof(group, data)
	if err != nil {
		return nil, fmt.Errorf("{{.Package}}: %w", err)
	}
	if len(responses) != {{len .Secrets}} {
		return nil, fmt.Errorf("{{.Package}}: expected {{len .Secrets}} responses, got %d", len(responses))
	}
	return &Proof{Challenge: challenge, Responses: responses}, nil
}
`))
