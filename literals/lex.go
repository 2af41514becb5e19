package literals

import (
	"github.com/npillmayer/onyx/radix"
)

type scstate int

const (
	state_start scstate = iota
	state_digits
	state_underscore
	state_base
	state_brace_base
	state_base_done // last byte completed a base
	state_colon
	state_variant_done // last byte was a variant letter
	state_mant
	state_mant_dot
	state_exp
	state_space
	state_backslash
	state_to_t
	state_to_o // "\to" complete
	state_to_space
	state_to_b

	accepting_states // do not change sequence, used as a marker
	accept_literal   // accept up to the last commit position
	max_accepting_states

	state_err // must be last
)

func isAccept(s scstate) bool {
	return s > accepting_states && s < max_accepting_states
}

// span is a half-open byte range of the input.
type span struct {
	from, to int
}

func (s span) empty() bool {
	return s.to <= s.from
}

// annotation is the base and encoding part of a literal, either for the
// source digits or for a conversion target.
type annotation struct {
	base     span
	variant  radix.Variant
	explicit bool // variant given with ':'
	mant     int  // bit widths
	exp      int
}

// literal collects the parts of a match while the state machine proceeds.
type literal struct {
	start     int
	digits    span
	source    annotation
	target    annotation
	inTarget  bool // parsing after 'b_'
	hasTarget bool
	commit    int // end of the longest well-formed prefix
}

// plain is true for literals without any annotation.
func (l *literal) plain() bool {
	return l.source.base.empty() && !l.source.explicit && !l.hasTarget
}

func (l *literal) current() *annotation {
	if l.inTarget {
		return &l.target
	}
	return &l.source
}

// maxWidth caps bit widths while they are read.
const maxWidth = 1 << 16

func isDecimal(c byte) bool {
	return c >= '0' && c <= '9'
}

// nextState is the transition function of the literal scanner. c is the
// byte at position i of the input, or 0 at the end of the input. The
// literal is updated as a side effect: spans are recorded and the commit
// position advances whenever a well-formed prefix is complete.
func (l *literal) nextState(s scstate, c byte, i int) scstate {
	a := l.current()
	switch s {
	case state_digits:
		if radix.DigitValue(c) >= 0 || c == '.' {
			return state_digits
		}
		l.digits = span{l.start, i}
		l.commit = i
		if c == '_' {
			return state_underscore
		}
		return l.afterBase(c)
	case state_underscore:
		if c == '{' {
			a.base.from = i + 1
			return state_brace_base
		}
		if isDecimal(c) {
			a.base.from = i
			return state_base
		}
		return accept_literal
	case state_base:
		if isDecimal(c) || c == '.' {
			return state_base
		}
		l.baseComplete(a, i, i)
		return l.afterBase(c)
	case state_brace_base:
		if isDecimal(c) || c == '.' {
			return state_brace_base
		}
		if c == '}' && i > a.base.from {
			l.baseComplete(a, i, i+1)
			return state_base_done
		}
		return accept_literal
	case state_base_done:
		return l.afterBase(c)
	case state_colon:
		v, ok := radix.VariantForSymbol(c)
		if !ok {
			return accept_literal
		}
		a.variant, a.explicit = v, true
		l.commit = i + 1
		return state_variant_done
	case state_variant_done:
		if a.variant.HasBitWidths() && isDecimal(c) {
			a.mant = int(c - '0')
			return state_mant
		}
		return l.afterVariant(c)
	case state_mant:
		if isDecimal(c) {
			a.mant = min(a.mant*10+int(c-'0'), maxWidth)
			return state_mant
		}
		if c == '.' {
			return state_mant_dot
		}
		return accept_literal
	case state_mant_dot:
		if isDecimal(c) {
			a.exp = int(c - '0')
			return state_exp
		}
		return accept_literal
	case state_exp:
		if isDecimal(c) {
			a.exp = min(a.exp*10+int(c-'0'), maxWidth)
			return state_exp
		}
		l.commit = i
		return l.afterVariant(c)
	}
	return l.conversionState(s, c)
}

// conversionState handles the "\to b_" part between source and target.
func (l *literal) conversionState(s scstate, c byte) scstate {
	switch s {
	case state_space:
		if c == ' ' {
			return state_space
		}
		if c == '\\' {
			return state_backslash
		}
	case state_backslash:
		if c == 't' {
			return state_to_t
		}
	case state_to_t:
		if c == 'o' {
			return state_to_o
		}
	case state_to_o, state_to_space:
		if c == ' ' {
			return state_to_space
		}
		if c == 'b' {
			return state_to_b
		}
	case state_to_b:
		if c == '_' {
			l.inTarget = true
			return state_underscore
		}
	}
	return accept_literal
}

func (l *literal) baseComplete(a *annotation, to, commit int) {
	a.base.to = to
	l.commit = commit
	if l.inTarget {
		l.hasTarget = true
	}
}

func (l *literal) afterBase(c byte) scstate {
	if c == ':' {
		return state_colon
	}
	return l.afterVariant(c)
}

func (l *literal) afterVariant(c byte) scstate {
	if l.inTarget {
		return accept_literal
	}
	switch c {
	case ' ':
		return state_space
	case '\\':
		return state_backslash
	}
	return accept_literal
}

// matchLiteral runs the state machine from position start, which has to hold
// a digit. It returns the literal matched, which ends at l.commit.
func matchLiteral(input []byte, start int) *literal {
	l := &literal{start: start}
	state := state_digits
	for i := start + 1; !isAccept(state); i++ {
		var c byte
		if i < len(input) {
			c = input[i]
		}
		state = l.nextState(state, c, i)
		if i >= len(input) && !isAccept(state) {
			state = accept_literal
		}
	}
	return l
}
