// Package schema is the front end of the proof compiler: it parses the
// Camenisch-Stadler-like DSL of spec.md §6 into a Schema, and validates
// it against the well-formedness invariants of spec.md §3 and §7. A
// Schema fixes the shape of a statement once and for all at compile
// time; nothing in this package or in codegen interprets a Schema's
// shape again at proof/verify time.
package schema

// Term is one summand point_name * scalar_name of an equation's
// right-hand side.
type Term struct {
	Point  string
	Scalar string
}

// Equation is one statement LHS = (term + term + ...). LHS must name a
// public point.
type Equation struct {
	LHS   string
	Terms []Term
}

// Schema is a fully parsed, not-yet-validated proof statement
// declaration. Field order in Secrets, Publics and Equations is
// preserved from the source text and is load-bearing: it fixes the
// declared order the transcript absorbs (spec.md §4.2) and the field
// order of the generated Publics/Secrets/Responses carriers (spec.md
// §4.1).
type Schema struct {
	Name      string
	Secrets   []string
	Publics   []string
	Equations []Equation
}
