package cli

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/npillmayer/onyx/engine/luaengine"
	"github.com/npillmayer/onyx/evaluator"
	"github.com/npillmayer/onyx/notebook"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

type testPaths struct {
	dir string
}

func (p testPaths) ConfigDir() string { return p.dir }
func (p testPaths) LogDir() string { return p.dir }
func (p testPaths) NotebookDir() string { return p.dir }

func TestEvaluatorConfig(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "onyx.cli")
	defer teardown()
	//
	conf := evaluatorConfig(nil)
	require.False(t, conf.Latex)
	require.Equal(t, int32(64), conf.Radix.Precision)
	k := koanf.New(".")
	err := k.Load(confmap.Provider(map[string]interface{}{
		"latex":           true,
		"precision":       20,
		"fraction-digits": -1,
	}, "."), nil)
	require.NoError(t, err)
	conf = evaluatorConfig(k)
	require.True(t, conf.Latex)
	require.Equal(t, int32(20), conf.Radix.Precision)
	require.Equal(t, 10, conf.Radix.FractionDigits)
}

func TestNotebookPath(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "onyx.cli")
	defer teardown()
	//
	paths := testPaths{dir: filepath.Join("home", "onyx")}
	for i, x := range []struct {
		name, path string
	}{
		{"test", filepath.Join("home", "onyx", "test.onyx")},
		{"test.db", filepath.Join("home", "onyx", "test.db")},
		{filepath.Join("tmp", "test"), filepath.Join("tmp", "test.onyx")},
	} {
		if p := NotebookPath(paths, x.name); p != x.path {
			t.Errorf("test %d: expected path %q, have %q", i, x.path, p)
		}
	}
	if p := NotebookPath(nil, "test"); p != "test.onyx" {
		t.Errorf("expected test.onyx without paths, have %q", p)
	}
}

func TestReadLines(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "onyx.cli")
	defer teardown()
	//
	nb, err := readLines(strings.NewReader("x = 5\n\n.p x^2\n"))
	require.NoError(t, err)
	require.Equal(t, 3, nb.Len())
	l, _ := nb.Line(2)
	require.Equal(t, notebook.Plot, l.Tag())
}

func TestInterpreter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "onyx.cli")
	defer teardown()
	//
	var out bytes.Buffer
	ev := evaluator.New(luaengine.New(), evaluator.Config{})
	intp := newInterpreter(context.Background(), ev, testPaths{dir: t.TempDir()}, &out)
	run := func(line string) string {
		t.Helper()
		out.Reset()
		require.NoError(t, intp.execute(line), line)
		return out.String()
	}
	require.Contains(t, run("x = 5"), "x := 5")
	require.Contains(t, run("x+1"), "6")
	run("edit 0 x = 6")
	l, err := intp.nb.Line(1)
	require.NoError(t, err)
	require.Equal(t, "7", l.Answer)
	require.Contains(t, run("vars"), "6")
	require.Contains(t, run("list"), "x+1")
	run(".p x^2, 2x")
	require.Contains(t, run("plot 2 0 2 2"), "4")
	require.Contains(t, run(`infix \frac{1}{2}`), "(1)/(2)")
	require.Contains(t, run("onyx 2*x"), `2\cdot x`)
	require.Contains(t, run("convert FF_{16}"), "255")
	require.Contains(t, run("latex on"), "true")
	require.Contains(t, run("save test"), "test.onyx")
	run("clear")
	require.Equal(t, 0, intp.nb.Len())
	require.Contains(t, run("load test"), "x = 6")
	require.Equal(t, 3, intp.nb.Len())
	run("insert 1 y = x")
	l, _ = intp.nb.Line(1)
	require.NotNil(t, l.Declaration)
	require.Equal(t, "6", l.Declaration.Value)
	run("delete 1")
	require.Equal(t, 3, intp.nb.Len())
	//
	err = intp.execute("edit 9 x")
	require.True(t, errors.Is(err, notebook.ErrNoSuchLine))
	err = intp.execute("edit x")
	require.True(t, errors.Is(err, errUsage))
	err = intp.execute("plot 0")
	require.Error(t, err)
}

func TestTranscodeCommand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "onyx.cli")
	defer teardown()
	//
	var out bytes.Buffer
	transcodeCmd.SetOut(&out)
	runTranscodeCmd(transcodeCmd, []string{`\sqrt{x}`})
	require.Equal(t, "sqrt(x)\n", out.String())
	out.Reset()
	require.NoError(t, transcodeCmd.Flags().Set("reverse", "true"))
	defer transcodeCmd.Flags().Set("reverse", "false")
	runTranscodeCmd(transcodeCmd, []string{"x^(1/2)"})
	require.Equal(t, "\\sqrt{x}\n", out.String())
}
