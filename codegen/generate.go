// Package codegen renders a schema.Schema into a standalone Go source
// file implementing the statement-specific proof module of spec.md §4.1:
// typed Publics/Secrets/Proof carriers and Create/Verify routines with
// the per-equation commitment formula fully unrolled, so that nothing at
// prove/verify time re-parses or dispatches on the statement's shape.
//
// Generate is an ordinary library function, not a CLI: spec.md §1 lists
// "any CLI, benchmarking harness, or build glue" as out of this system's
// scope. The statements/ packages in this repo are the committed output
// of calling Generate once per schema, analogous to how the teacher
// commits its protobuf/*.pb.go files rather than regenerating them on
// every build.
package codegen

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/csproof/sigma/internal/log"
	"github.com/csproof/sigma/schema"
)

// Options configures Generate.
type Options struct {
	// Package is the Go package name (and clause) of the rendered file.
	Package string
	// Label, if true, makes the generated Create/Verify absorb the
	// schema name as a transcript prefix (transcript.WithLabel), opting
	// into domain separation per the Open Question in DESIGN.md. Left
	// false, generated code matches the baseline (unprefixed) transcript.
	Label bool
	// Logger receives compile-time diagnostics; defaults to a no-op
	// logger if nil. Never receives secret material — there is none at
	// codegen time, only the schema's public shape.
	Logger log.Logger
}

// Generate validates s and writes the rendered Go source for it to w.
func Generate(w io.Writer, s *schema.Schema, opts Options) error {
	if err := schema.Validate(s); err != nil {
		return fmt.Errorf("codegen: invalid schema %q: %w", s.Name, err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = noopLogger{}
	}
	logger.With("schema", s.Name, "package", opts.Package).
		Debug("rendering proof module", "secrets", len(s.Secrets), "equations", len(s.Equations))

	data, err := buildTemplateData(s, opts)
	if err != nil {
		return err
	}

	return moduleTemplate.Execute(w, data)
}

type fieldInfo struct {
	Field string // exported Go identifier
	Orig  string // original DSL identifier
}

type termInfo struct {
	PointField  string
	ScalarField string
}

type equationInfo struct {
	LHSField string
	LHSOrig  string
	Terms    []termInfo
	// CommitLines computes t<LHSField> from the randomnesses r<Field>,
	// one Go statement per line, first assigning then Add-accumulating
	// any further terms — precomputed here rather than in the template
	// so the template itself never needs to special-case a one- vs
	// multi-term right-hand side.
	CommitLines []string
	// EvalLines is CommitLines' verification-side counterpart: it
	// computes eval<LHSField> from the proof's responses z<Field>.
	EvalLines []string
}

func commitLines(lhsField string, terms []termInfo, varPrefix, destPrefix string) []string {
	lines := make([]string, 0, len(terms))
	dest := destPrefix + lhsField
	for i, t := range terms {
		mulExpr := fmt.Sprintf("group.Point().Mul(%s%s, publics.%s)", varPrefix, t.ScalarField, t.PointField)
		if i == 0 {
			lines = append(lines, fmt.Sprintf("%s := %s", dest, mulExpr))
			continue
		}
		lines = append(lines, fmt.Sprintf("%s.Add(%s, %s)", dest, dest, mulExpr))
	}
	return lines
}

type templateData struct {
	Package   string
	Name      string
	Label     bool
	Secrets   []fieldInfo
	Publics   []fieldInfo
	Equations []equationInfo
}

func buildTemplateData(s *schema.Schema, opts Options) (*templateData, error) {
	secretField := make(map[string]string, len(s.Secrets))
	secrets := make([]fieldInfo, 0, len(s.Secrets))
	for _, name := range s.Secrets {
		field := exportName(name)
		secretField[name] = field
		secrets = append(secrets, fieldInfo{Field: field, Orig: name})
	}

	publicField := make(map[string]string, len(s.Publics))
	publics := make([]fieldInfo, 0, len(s.Publics))
	for _, name := range s.Publics {
		field := exportName(name)
		publicField[name] = field
		publics = append(publics, fieldInfo{Field: field, Orig: name})
	}

	equations := make([]equationInfo, 0, len(s.Equations))
	for _, eq := range s.Equations {
		terms := make([]termInfo, 0, len(eq.Terms))
		for _, term := range eq.Terms {
			terms = append(terms, termInfo{
				PointField:  publicField[term.Point],
				ScalarField: secretField[term.Scalar],
			})
		}
		lhsField := publicField[eq.LHS]
		equations = append(equations, equationInfo{
			LHSField:    lhsField,
			LHSOrig:     eq.LHS,
			Terms:       terms,
			CommitLines: commitLines(lhsField, terms, "r", "t"),
			EvalLines:   commitLines(lhsField, terms, "z", "eval"),
		})
	}

	pkg := opts.Package
	if pkg == "" {
		pkg = strings.ToLower(s.Name)
	}

	return &templateData{
		Package:   pkg,
		Name:      s.Name,
		Label:     opts.Label,
		Secrets:   secrets,
		Publics:   publics,
		Equations: equations,
	}, nil
}

// exportName turns a DSL identifier (which may be lowercase, e.g. a
// secret "x") into an exported Go struct field name ("X").
func exportName(name string) string {
	if name == "" {
		return name
	}
	r := []rune(name)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

type noopLogger struct{}

func (noopLogger) Info(...interface{})           {}
func (noopLogger) Debug(...interface{})          {}
func (noopLogger) Warn(...interface{})           {}
func (noopLogger) Error(...interface{})          {}
func (l noopLogger) With(...interface{}) log.Logger { return l }
func (l noopLogger) Named(string) log.Logger        { return l }
