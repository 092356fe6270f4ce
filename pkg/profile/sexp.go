package profile

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// Sexp is a node of a parsed profile: an atom or a list.
type Sexp interface {
	IsLeaf() bool
	String() string
}

// Symbol is an unquoted atom such as a keyword, port or peripheral name.
type Symbol string

func (s Symbol) IsLeaf() bool   { return true }
func (s Symbol) String() string { return string(s) }

// Quoted is a string atom.
type Quoted string

func (q Quoted) IsLeaf() bool   { return true }
func (q Quoted) String() string { return fmt.Sprintf("%q", string(q)) }

// List is a parenthesized list.
type List struct {
	Items []Sexp
	Line  int
}

func (l *List) IsLeaf() bool { return false }

func (l *List) String() string {
	parts := make([]string, len(l.Items))
	for i, it := range l.Items {
		parts[i] = it.String()
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// Head returns the leading symbol of the list, or "".
func (l *List) Head() string {
	if len(l.Items) == 0 {
		return ""
	}
	if s, ok := l.Items[0].(Symbol); ok {
		return string(s)
	}
	return ""
}

// Args returns the items after the head.
func (l *List) Args() []Sexp {
	if len(l.Items) == 0 {
		return nil
	}
	return l.Items[1:]
}

type tokenType int

const (
	tokenEOF tokenType = iota
	tokenLeftParen
	tokenRightParen
	tokenSymbol
	tokenString
)

type token struct {
	typ   tokenType
	value string
	line  int
}

// lexer splits profile text into tokens. Comments run from ';' to end of
// line.
type lexer struct {
	reader *bufio.Reader
	peeked *rune
	line   int
}

func newLexer(r io.Reader) *lexer {
	return &lexer{reader: bufio.NewReader(r), line: 1}
}

func (l *lexer) next() (token, error) {
	for {
		ch, err := l.peek()
		if err == io.EOF {
			return token{typ: tokenEOF, line: l.line}, nil
		}
		if err != nil {
			return token{}, err
		}
		if unicode.IsSpace(ch) {
			l.read()
			continue
		}
		if ch == ';' {
			for {
				c, err := l.read()
				if err != nil || c == '\n' {
					break
				}
			}
			continue
		}
		break
	}

	ch, _ := l.peek()
	line := l.line
	switch ch {
	case '(':
		l.read()
		return token{typ: tokenLeftParen, value: "(", line: line}, nil
	case ')':
		l.read()
		return token{typ: tokenRightParen, value: ")", line: line}, nil
	case '"':
		return l.readString()
	}
	return l.readSymbol()
}

func (l *lexer) peek() (rune, error) {
	if l.peeked != nil {
		return *l.peeked, nil
	}
	ch, _, err := l.reader.ReadRune()
	if err != nil {
		return 0, err
	}
	l.peeked = &ch
	return ch, nil
}

func (l *lexer) read() (rune, error) {
	var ch rune
	if l.peeked != nil {
		ch = *l.peeked
		l.peeked = nil
	} else {
		var err error
		if ch, _, err = l.reader.ReadRune(); err != nil {
			return 0, err
		}
	}
	if ch == '\n' {
		l.line++
	}
	return ch, nil
}

func (l *lexer) readString() (token, error) {
	line := l.line
	l.read()

	var sb strings.Builder
	for {
		ch, err := l.read()
		if err != nil {
			return token{}, fmt.Errorf("line %d: unterminated string", line)
		}
		switch ch {
		case '"':
			return token{typ: tokenString, value: sb.String(), line: line}, nil
		case '\\':
			next, err := l.read()
			if err != nil {
				return token{}, fmt.Errorf("line %d: unterminated string", line)
			}
			switch next {
			case 'n':
				sb.WriteRune('\n')
			case 't':
				sb.WriteRune('\t')
			default:
				sb.WriteRune(next)
			}
		default:
			sb.WriteRune(ch)
		}
	}
}

func (l *lexer) readSymbol() (token, error) {
	line := l.line
	var sb strings.Builder
	for {
		ch, err := l.peek()
		if err != nil || unicode.IsSpace(ch) || ch == '(' || ch == ')' || ch == '"' || ch == ';' {
			break
		}
		l.read()
		sb.WriteRune(ch)
	}
	return token{typ: tokenSymbol, value: sb.String(), line: line}, nil
}

// parseSexp parses every top-level expression in r.
func parseSexp(r io.Reader) ([]Sexp, error) {
	lx := newLexer(r)
	var out []Sexp
	for {
		tok, err := lx.next()
		if err != nil {
			return nil, err
		}
		if tok.typ == tokenEOF {
			return out, nil
		}
		expr, err := parseExpr(lx, tok)
		if err != nil {
			return nil, err
		}
		out = append(out, expr)
	}
}

func parseExpr(lx *lexer, tok token) (Sexp, error) {
	switch tok.typ {
	case tokenLeftParen:
		list := &List{Line: tok.line}
		for {
			t, err := lx.next()
			if err != nil {
				return nil, err
			}
			switch t.typ {
			case tokenRightParen:
				return list, nil
			case tokenEOF:
				return nil, fmt.Errorf("line %d: unclosed list", tok.line)
			}
			item, err := parseExpr(lx, t)
			if err != nil {
				return nil, err
			}
			list.Items = append(list.Items, item)
		}
	case tokenSymbol:
		return Symbol(tok.value), nil
	case tokenString:
		return Quoted(tok.value), nil
	case tokenRightParen:
		return nil, fmt.Errorf("line %d: unexpected ')'", tok.line)
	}
	return nil, fmt.Errorf("line %d: unexpected token", tok.line)
}
