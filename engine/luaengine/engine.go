package luaengine

import (
	"context"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	lua "github.com/yuin/gopher-lua"
)

// prelude binds math functions to globals. Names have to be listed in
// knownNames as well.
const prelude = `
for k, v in pairs(math) do _G[k] = v end
e = math.exp(1)
ln = math.log
log = function(x, b) if b then return math.log(x) / math.log(b) end return math.log(x) end
arcsin, arccos, arctan = math.asin, math.acos, math.atan
mod = math.fmod
round = function(x) return math.floor(x + 0.5) end
nthRoot = function(x, n) return x ^ (1 / n) end
pow = function(x, y) return x ^ y end
`

var knownNames = map[string]bool{
	"abs": true, "acos": true, "asin": true, "atan": true, "ceil": true,
	"cos": true, "cosh": true, "deg": true, "exp": true, "floor": true,
	"fmod": true, "log": true, "max": true, "min": true, "pi": true,
	"rad": true, "sin": true, "sinh": true, "sqrt": true, "tan": true,
	"tanh": true, "huge": true, "e": true, "ln": true, "arcsin": true,
	"arccos": true, "arctan": true, "mod": true, "round": true,
	"nthRoot": true, "pow": true,
}

var (
	identifier    = regexp.MustCompile(`[A-Za-z_][A-Za-z0-9_]*`)
	chunkLocation = regexp.MustCompile(`^<string>:?\s*(line:\d+\(column:\d+\)|\d+:)?\s*`)
)

// Engine evaluates infix expressions numerically.
type Engine struct {
	// Digits is the number of significant digits of results. 0 means 15.
	Digits int
}

// New creates a numeric engine.
func New() *Engine {
	return &Engine{}
}

// Evaluate evaluates infix. The result is a single line, or two lines in
// case of an error. LaTeX output does not differ from plain output for
// numbers, so latex is ignored.
func (eng *Engine) Evaluate(ctx context.Context, infix string, latex bool) string {
	expr := strings.TrimSpace(implicitProducts(infix))
	if expr == "" {
		return ""
	}
	for _, name := range identifier.FindAllString(expr, -1) {
		if !knownNames[name] {
			tracer().Debugf("free symbol %q, returning %q unevaluated", name, expr)
			return expr
		}
	}
	v, err := eng.eval(ctx, expr)
	if err != nil {
		tracer().Infof("cannot evaluate %q: %v", expr, err)
		return fmt.Sprintf("%s\nStop: %s", infix, err.Error())
	}
	return v
}

func (eng *Engine) eval(ctx context.Context, expr string) (string, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()
	if ctx != nil {
		L.SetContext(ctx)
	}
	for _, lib := range []struct {
		name string
		open lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.MathLibName, lua.OpenMath},
	} {
		if err := L.CallByParam(lua.P{
			Fn:      L.NewFunction(lib.open),
			NRet:    0,
			Protect: true,
		}, lua.LString(lib.name)); err != nil {
			return "", luaError(err)
		}
	}
	if err := L.DoString(prelude); err != nil {
		return "", luaError(err)
	}
	if err := L.DoString("return " + expr); err != nil {
		return "", luaError(err)
	}
	result := L.Get(-1)
	L.Pop(1)
	switch r := result.(type) {
	case lua.LNumber:
		return eng.format(float64(r))
	case lua.LBool:
		return r.String(), nil
	}
	return "", fmt.Errorf("not a number: %s", result.Type().String())
}

func (eng *Engine) format(f float64) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", errors.New("result is not a finite number")
	}
	digits := eng.Digits
	if digits <= 0 {
		digits = 15
	}
	d := decimal.NewFromFloat(f)
	if d.IsZero() {
		return "0", nil
	}
	// round to significant digits
	exp := int32(math.Floor(math.Log10(math.Abs(f)))) + 1
	return d.Round(int32(digits) - exp).String(), nil
}

// luaError drops the chunk location and stack trace from Lua errors.
func luaError(err error) error {
	msg := err.Error()
	var apiErr *lua.ApiError
	if errors.As(err, &apiErr) && apiErr.Object != nil {
		msg = apiErr.Object.String()
	}
	msg, _, _ = strings.Cut(msg, "\n")
	msg = chunkLocation.ReplaceAllString(msg, "")
	return errors.New(strings.Join(strings.Fields(msg), " "))
}

// implicitProducts inserts '*' between a number or a closing parenthesis
// and a following identifier, number or opening parenthesis.
func implicitProducts(s string) string {
	const (
		other = iota
		number
		ident
		closing
	)
	var b strings.Builder
	b.Grow(len(s) + 8)
	last, sep := other, false
	for _, r := range s {
		if unicode.IsSpace(r) {
			b.WriteRune(r)
			sep = true
			continue
		}
		switch {
		case unicode.IsLetter(r) || r == '_':
			if last == ident && !sep {
				break
			}
			if last == number || last == closing {
				b.WriteRune('*')
			}
			last = ident
		case unicode.IsDigit(r) || r == '.':
			if last == ident && !sep {
				break
			}
			if last == closing {
				b.WriteRune('*')
			}
			last = number
		case r == '(':
			if last == number || last == closing {
				b.WriteRune('*')
			}
			last = other
		case r == ')':
			last = closing
		default:
			last = other
		}
		sep = false
		b.WriteRune(r)
	}
	return b.String()
}
