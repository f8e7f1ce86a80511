package template

import (
	"errors"
)

var (
	errUnterminatedBlock = errors.New("unterminated block")
	errUnexpectedClose   = errors.New("unexpected block close")
	errUnexpectedElse    = errors.New("unexpected else")
)

// parseEnd reports what terminated a body parse.
type parseEnd int

const (
	endEOF parseEnd = iota
	endElse
	endClose
)

type parser struct {
	toks []token
	pos  int
}

// parse builds a node tree from a token stream via recursive descent.
// Every block open must meet a matching close; a stray close or else is
// a parse error.
func parse(toks []token) ([]Node, error) {
	p := &parser{toks: toks}
	nodes, end, err := p.parseBody(blockNone, false)
	if err != nil {
		return nil, err
	}
	if end != endEOF {
		return nil, errUnexpectedClose
	}
	return nodes, nil
}

// parseBody consumes tokens until EOF, a close matching open, or (when
// allowElse) an else marker. The else branch of an if re-enters with
// allowElse false so a second else in the same block fails.
func (p *parser) parseBody(open blockKind, allowElse bool) ([]Node, parseEnd, error) {
	var nodes []Node
	for p.pos < len(p.toks) {
		t := p.toks[p.pos]
		p.pos++
		switch t.typ {
		case tokenText:
			nodes = append(nodes, &TextNode{Text: t.arg})
		case tokenVariable:
			nodes = append(nodes, &VariableNode{Path: t.arg})
		case tokenPartial:
			nodes = append(nodes, &PartialNode{Name: t.arg, Raw: t.raw})
		case tokenElse:
			if !allowElse {
				return nil, 0, errUnexpectedElse
			}
			return nodes, endElse, nil
		case tokenClose:
			if open == blockNone || t.block != open {
				return nil, 0, errUnexpectedClose
			}
			return nodes, endClose, nil
		case tokenOpen:
			child, err := p.parseBlock(t)
			if err != nil {
				return nil, 0, err
			}
			nodes = append(nodes, child)
		}
	}
	if open != blockNone {
		return nil, 0, errUnterminatedBlock
	}
	return nodes, endEOF, nil
}

// parseBlock parses one opened block through its matching close.
func (p *parser) parseBlock(openTok token) (Node, error) {
	switch openTok.block {
	case blockIf:
		then, end, err := p.parseBody(blockIf, true)
		if err != nil {
			return nil, err
		}
		n := &IfNode{Path: openTok.arg, Then: then}
		if end == endElse {
			elseBody, end2, err := p.parseBody(blockIf, false)
			if err != nil {
				return nil, err
			}
			if end2 != endClose {
				return nil, errUnterminatedBlock
			}
			n.Else = elseBody
		} else if end != endClose {
			return nil, errUnterminatedBlock
		}
		return n, nil
	case blockEach:
		body, end, err := p.parseBody(blockEach, false)
		if err != nil {
			return nil, err
		}
		if end != endClose {
			return nil, errUnterminatedBlock
		}
		return &EachNode{Path: openTok.arg, Body: body}, nil
	case blockUnless:
		body, end, err := p.parseBody(blockUnless, false)
		if err != nil {
			return nil, err
		}
		if end != endClose {
			return nil, errUnterminatedBlock
		}
		return &UnlessNode{Path: openTok.arg, Body: body}, nil
	}
	return nil, errUnexpectedClose
}
