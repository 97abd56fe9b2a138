package schema

import "fmt"

// Parse parses src against the grammar of spec.md §6:
//
//	schema      := name ',' '(' secret_list ')' ',' '(' public_list ')' ':' equation_list
//	secret_list := ident (',' ident)*
//	public_list := ident (',' ident)*
//	equation_list := equation (',' equation)*
//	equation    := ident '=' '(' rhs ')'
//	rhs         := term ('+' term)*
//	term        := ident '*' ident      // point_name '*' scalar_name
//
// Parse performs only syntactic analysis; call Validate on the result to
// check the semantic well-formedness invariants of spec.md §3 and §7.
func Parse(src string) (*Schema, error) {
	p := &parser{lex: newLexer(src)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p.parseSchema()
}

type parser struct {
	lex *lexer
	cur token
}

func (p *parser) advance() error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.cur = tok
	return nil
}

func (p *parser) expect(kind tokenKind, what string) (token, error) {
	if p.cur.kind != kind {
		return token{}, fmt.Errorf("schema: expected %s at offset %d, got %q", what, p.cur.pos, p.cur.text)
	}
	tok := p.cur
	if err := p.advance(); err != nil {
		return token{}, err
	}
	return tok, nil
}

func (p *parser) parseSchema() (*Schema, error) {
	name, err := p.expect(tokIdent, "schema name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokComma, "','"); err != nil {
		return nil, err
	}

	if _, err := p.expect(tokLParen, "'('"); err != nil {
		return nil, err
	}
	secrets, err := p.parseIdentList()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokRParen, "')'"); err != nil {
		return nil, err
	}

	if _, err := p.expect(tokComma, "','"); err != nil {
		return nil, err
	}

	if _, err := p.expect(tokLParen, "'('"); err != nil {
		return nil, err
	}
	publics, err := p.parseIdentList()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokRParen, "')'"); err != nil {
		return nil, err
	}

	if _, err := p.expect(tokColon, "':'"); err != nil {
		return nil, err
	}

	equations, err := p.parseEquationList()
	if err != nil {
		return nil, err
	}

	if p.cur.kind != tokEOF {
		return nil, fmt.Errorf("schema: unexpected trailing input at offset %d: %q", p.cur.pos, p.cur.text)
	}

	return &Schema{
		Name:      name.text,
		Secrets:   secrets,
		Publics:   publics,
		Equations: equations,
	}, nil
}

func (p *parser) parseIdentList() ([]string, error) {
	first, err := p.expect(tokIdent, "identifier")
	if err != nil {
		return nil, err
	}
	idents := []string{first.text}

	for p.cur.kind == tokComma {
		if err := p.advance(); err != nil {
			return nil, err
		}
		id, err := p.expect(tokIdent, "identifier")
		if err != nil {
			return nil, err
		}
		idents = append(idents, id.text)
	}
	return idents, nil
}

func (p *parser) parseEquationList() ([]Equation, error) {
	first, err := p.parseEquation()
	if err != nil {
		return nil, err
	}
	equations := []Equation{first}

	for p.cur.kind == tokComma {
		if err := p.advance(); err != nil {
			return nil, err
		}
		eq, err := p.parseEquation()
		if err != nil {
			return nil, err
		}
		equations = append(equations, eq)
	}
	return equations, nil
}

func (p *parser) parseEquation() (Equation, error) {
	lhs, err := p.expect(tokIdent, "equation left-hand side")
	if err != nil {
		return Equation{}, err
	}
	if _, err := p.expect(tokEquals, "'='"); err != nil {
		return Equation{}, err
	}
	if _, err := p.expect(tokLParen, "'('"); err != nil {
		return Equation{}, err
	}
	terms, err := p.parseRHS()
	if err != nil {
		return Equation{}, err
	}
	if _, err := p.expect(tokRParen, "')'"); err != nil {
		return Equation{}, err
	}
	return Equation{LHS: lhs.text, Terms: terms}, nil
}

func (p *parser) parseRHS() ([]Term, error) {
	first, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	terms := []Term{first}

	for p.cur.kind == tokPlus {
		if err := p.advance(); err != nil {
			return nil, err
		}
		term, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		terms = append(terms, term)
	}
	return terms, nil
}

func (p *parser) parseTerm() (Term, error) {
	point, err := p.expect(tokIdent, "public point name")
	if err != nil {
		return Term{}, err
	}
	if _, err := p.expect(tokStar, "'*'"); err != nil {
		return Term{}, err
	}
	scalar, err := p.expect(tokIdent, "secret scalar name")
	if err != nil {
		return Term{}, err
	}
	return Term{Point: point.text, Scalar: scalar.text}, nil
}
