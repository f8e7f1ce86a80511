package template

import (
	"errors"
	"strings"
)

type tokenType int

const (
	tokenText tokenType = iota
	tokenVariable
	tokenOpen
	tokenClose
	tokenElse
	tokenPartial
)

type blockKind int

const (
	blockNone blockKind = iota
	blockIf
	blockEach
	blockUnless
)

// token is one lexed unit: literal text or a single directive.
type token struct {
	typ   tokenType
	block blockKind
	arg   string // text content, variable path, block path, or partial name
	raw   string // original inner content, used to echo unresolved partials
}

var errUnterminated = errors.New("unterminated directive")

// lex splits template source into a flat token stream. It assumes the
// brace-balance gate has already run; a {{ with no closing }} still
// reports an error for safety.
func lex(src string) ([]token, error) {
	var toks []token
	for {
		i := strings.Index(src, "{{")
		if i < 0 {
			if src != "" {
				toks = append(toks, token{typ: tokenText, arg: src})
			}
			return toks, nil
		}
		if i > 0 {
			toks = append(toks, token{typ: tokenText, arg: src[:i]})
		}
		rest := src[i+2:]
		j := strings.Index(rest, "}}")
		if j < 0 {
			return nil, errUnterminated
		}
		inner := rest[:j]
		src = rest[j+2:]
		toks = append(toks, classify(inner))
	}
}

// classify turns the inner content of one {{ }} directive into a token.
func classify(inner string) token {
	content := strings.TrimSpace(inner)
	switch {
	case strings.HasPrefix(content, "#if"):
		return token{typ: tokenOpen, block: blockIf, arg: strings.TrimSpace(content[len("#if"):])}
	case strings.HasPrefix(content, "#each"):
		return token{typ: tokenOpen, block: blockEach, arg: strings.TrimSpace(content[len("#each"):])}
	case strings.HasPrefix(content, "#unless"):
		return token{typ: tokenOpen, block: blockUnless, arg: strings.TrimSpace(content[len("#unless"):])}
	case content == "/if":
		return token{typ: tokenClose, block: blockIf}
	case content == "/each":
		return token{typ: tokenClose, block: blockEach}
	case content == "/unless":
		return token{typ: tokenClose, block: blockUnless}
	case content == "else":
		return token{typ: tokenElse}
	case strings.HasPrefix(content, ">"):
		return token{typ: tokenPartial, arg: strings.TrimSpace(content[1:]), raw: inner}
	}
	return token{typ: tokenVariable, arg: content}
}
