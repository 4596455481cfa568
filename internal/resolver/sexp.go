package resolver

import (
	"fmt"
	"strings"
)

// The helper's no-argument response is a tiny fixed-grammar association
// list, e.g.:
//
//	((drives . ("C" "D")) (folders . ("C:/Users/bob/Desktop")))
//
// node is one parsed element: either an atom (possibly quoted in the
// source) or a list.
type node struct {
	atom string
	list []node
	leaf bool
}

// parseHelperResponse extracts the drive identifiers and folder paths
// from a helper response. Any structural problem is an error; callers
// degrade to empty results, never propagate.
func parseHelperResponse(s string) (drives, folders []string, err error) {
	root, err := parseSexp(s)
	if err != nil {
		return nil, nil, err
	}
	if root.leaf {
		return nil, nil, fmt.Errorf("expected association list, got atom %q", root.atom)
	}

	for _, pair := range root.list {
		key, values, ok := assocPair(pair)
		if !ok {
			continue
		}
		switch key {
		case "drives":
			drives = values
		case "folders":
			folders = values
		}
	}
	return drives, folders, nil
}

// assocPair matches a (key . (v1 v2 ...)) element and returns the key
// and the string values.
func assocPair(n node) (string, []string, bool) {
	if n.leaf || len(n.list) != 3 {
		return "", nil, false
	}
	key, dot, values := n.list[0], n.list[1], n.list[2]
	if !key.leaf || !dot.leaf || dot.atom != "." || values.leaf {
		return "", nil, false
	}

	out := make([]string, 0, len(values.list))
	for _, v := range values.list {
		if !v.leaf {
			return "", nil, false
		}
		out = append(out, v.atom)
	}
	return key.atom, out, true
}

// parseSexp parses a single s-expression and requires nothing but
// whitespace after it.
func parseSexp(s string) (node, error) {
	p := &sexpParser{input: s}
	n, err := p.parse()
	if err != nil {
		return node{}, err
	}
	p.skipSpace()
	if p.pos != len(p.input) {
		return node{}, fmt.Errorf("trailing input at offset %d", p.pos)
	}
	return n, nil
}

type sexpParser struct {
	input string
	pos   int
}

func (p *sexpParser) parse() (node, error) {
	p.skipSpace()
	if p.pos >= len(p.input) {
		return node{}, fmt.Errorf("unexpected end of input")
	}

	switch p.input[p.pos] {
	case '(':
		p.pos++
		var items []node
		for {
			p.skipSpace()
			if p.pos >= len(p.input) {
				return node{}, fmt.Errorf("unterminated list")
			}
			if p.input[p.pos] == ')' {
				p.pos++
				return node{list: items}, nil
			}
			item, err := p.parse()
			if err != nil {
				return node{}, err
			}
			items = append(items, item)
		}
	case ')':
		return node{}, fmt.Errorf("unexpected ')' at offset %d", p.pos)
	case '"':
		return p.parseString()
	default:
		return p.parseAtom()
	}
}

func (p *sexpParser) parseString() (node, error) {
	start := p.pos
	p.pos++ // opening quote
	var b strings.Builder
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		switch c {
		case '"':
			p.pos++
			return node{atom: b.String(), leaf: true}, nil
		case '\\':
			p.pos++
			if p.pos >= len(p.input) {
				return node{}, fmt.Errorf("unterminated escape in string at offset %d", start)
			}
			b.WriteByte(p.input[p.pos])
			p.pos++
		default:
			b.WriteByte(c)
			p.pos++
		}
	}
	return node{}, fmt.Errorf("unterminated string at offset %d", start)
}

func (p *sexpParser) parseAtom() (node, error) {
	start := p.pos
	for p.pos < len(p.input) && !isDelimiter(p.input[p.pos]) {
		p.pos++
	}
	return node{atom: p.input[start:p.pos], leaf: true}, nil
}

func (p *sexpParser) skipSpace() {
	for p.pos < len(p.input) && isSpace(p.input[p.pos]) {
		p.pos++
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isDelimiter(c byte) bool {
	return isSpace(c) || c == '(' || c == ')' || c == '"'
}
