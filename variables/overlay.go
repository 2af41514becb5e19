package variables

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/emirpasic/gods/maps/treemap"
	"golang.org/x/text/unicode/norm"
)

// Overlay holds the declarations of notebook lines, ordered by line index.
// An Overlay is not safe for concurrent modification; it is usually built
// from a snapshot of the notebook for a single evaluation.
type Overlay struct {
	decls *treemap.Map // line index → Declaration
}

// NewOverlay creates an empty overlay.
func NewOverlay() *Overlay {
	return &Overlay{decls: treemap.NewWithIntComparator()}
}

// Declare records the declaration of line. A previous declaration of the
// same line is replaced.
func (o *Overlay) Declare(line int, d Declaration) {
	d.Name = norm.NFC.String(d.Name)
	o.decls.Put(line, d)
}

// Retract removes the declaration of line, if any.
func (o *Overlay) Retract(line int) {
	o.decls.Remove(line)
}

// Size returns the number of declarations.
func (o *Overlay) Size() int {
	return o.decls.Size()
}

// Bindings returns the variables visible to line before, i.e. the fold of the
// declarations of all lines with a smaller index. Later declarations shadow
// earlier ones.
func (o *Overlay) Bindings(before int) map[string]string {
	b := make(map[string]string)
	it := o.decls.Iterator()
	for it.Next() {
		if it.Key().(int) >= before {
			break
		}
		d := it.Value().(Declaration)
		b[d.Name] = d.Value
	}
	return b
}

// Substitute replaces the variables visible to line before in text.
func (o *Overlay) Substitute(before int, text string) string {
	b := o.Bindings(before)
	if len(b) == 0 {
		return text
	}
	names := make([]string, 0, len(b))
	for n := range b {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool { // longest first
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})
	out := norm.NFC.String(text)
	for _, n := range names {
		out = substitute(out, n, b[n])
	}
	tracer().Debugf("line %d: substituted %d variable(s): %q ⟹ %q", before, len(names), text, out)
	return out
}

// substitute replaces whole-word occurrences of name by value. Names
// following a backslash are macro names and left alone. A digit immediately
// preceding name is taken as a factor.
func substitute(text, name, value string) string {
	if name == "" {
		return text
	}
	var out strings.Builder
	pos := 0
	for {
		k := strings.Index(text[pos:], name)
		if k < 0 {
			out.WriteString(text[pos:])
			break
		}
		k += pos
		end := k + len(name)
		out.WriteString(text[pos:k])
		before, bsz := utf8.DecodeLastRuneInString(text[:k])
		after, asz := utf8.DecodeRuneInString(text[end:])
		switch {
		case asz > 0 && isWordRune(after):
			out.WriteString(name)
		case bsz == 0:
			out.WriteString(value)
		case before >= '0' && before <= '9':
			out.WriteString(`\cdot ` + value)
		case before == '\\' || isWordRune(before):
			out.WriteString(name)
		default:
			out.WriteString(value)
		}
		pos = end
	}
	return out.String()
}
