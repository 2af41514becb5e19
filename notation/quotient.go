package notation

import (
	"strings"
	"sync"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Token types of the infix lexer.
const (
	tokWord int = iota
	tokMacro
	tokLBrace
	tokRBrace
	tokSlash
	tokOther
)

var infixLexer struct {
	once  sync.Once
	lexer *lexmachine.Lexer
	err   error
}

// lexer returns the (lazily compiled) lexer for infix text. Every byte of
// the input is part of exactly one token, thus the lexemes of a token
// sequence concatenate to the input.
func lexer() (*lexmachine.Lexer, error) {
	infixLexer.once.Do(func() {
		lexer := lexmachine.NewLexer()
		lexer.Add([]byte(`[A-Za-z0-9_]+`), makeToken(tokWord))
		lexer.Add([]byte(`\\[A-Za-z]+`), makeToken(tokMacro))
		lexer.Add([]byte(`[{]`), makeToken(tokLBrace))
		lexer.Add([]byte(`[}]`), makeToken(tokRBrace))
		lexer.Add([]byte(`/`), makeToken(tokSlash))
		lexer.Add([]byte(`[^A-Za-z0-9_{}/]`), makeToken(tokOther))
		infixLexer.err = lexer.Compile()
		infixLexer.lexer = lexer
	})
	return infixLexer.lexer, infixLexer.err
}

func makeToken(id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}

func tokenize(s string) ([]*lexmachine.Token, error) {
	lx, err := lexer()
	if err != nil {
		return nil, err
	}
	scanner, err := lx.Scanner([]byte(s))
	if err != nil {
		return nil, err
	}
	var toks []*lexmachine.Token
	for tok, err, eof := scanner.Next(); !eof; tok, err, eof = scanner.Next() {
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok.(*lexmachine.Token))
	}
	return toks, nil
}

// bareQuotients rewrites a/b to \dfrac{a}{b}, with a and b being words
// (identifiers or unsigned integers). Quotients inside of a brace group, e.g.
// in an exponent ^{1/n}, are left alone.
func bareQuotients(s string) string {
	toks, err := tokenize(s)
	if err != nil {
		tracer().Errorf("cannot tokenize %q: %v", s, err)
		return s
	}
	var out strings.Builder
	depth := 0
	for i := 0; i < len(toks); i++ {
		t := toks[i]
		switch t.Type {
		case tokLBrace:
			depth++
		case tokRBrace:
			if depth > 0 {
				depth--
			}
		case tokWord:
			if depth == 0 && i+2 < len(toks) && toks[i+1].Type == tokSlash && toks[i+2].Type == tokWord {
				out.WriteString(`\dfrac{`)
				out.Write(t.Lexeme)
				out.WriteString(`}{`)
				out.Write(toks[i+2].Lexeme)
				out.WriteString(`}`)
				i += 2
				continue
			}
		}
		out.Write(t.Lexeme)
	}
	return out.String()
}
