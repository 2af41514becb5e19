package cli

import (
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/npillmayer/onyx"
	"github.com/npillmayer/onyx/evaluator"
	"github.com/npillmayer/onyx/radix"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
)

// appTag identifies onyx for locating configuration files and paths.
const appTag = "ONYX"

// loadConfig is a callback function used by cobra's initialization mechanism.
// Unfortunately we're not allowed a return value.
func loadConfig() {
	k := koanf.New(".") // '.' is hierarchy delimiter
	// We locate onyx configuration with an application-key of 'ONYX' and
	// use NestedText-format (nt) for config-files
	konf := koanfadapter.New(k, appTag, []string{"nt"})
	konf.InitDefaults()
	if err := mergeFlags(konf); err != nil {
		tracing.Errorf(err.Error())
		onyx.Exit(1)
	}
	if err := configureTracing(konf); err != nil {
		tracing.Errorf(err.Error())
		onyx.Exit(1)
	}
	onyx.Configuration = k // push the configuration to app-global scope
}

func mergeFlags(konf *koanfadapter.KConf) error {
	flags := rootCmd.PersistentFlags()
	err := konf.Koanf().Load(posflag.Provider(flags, ".", konf.Koanf()), nil)
	if err != nil {
		return err
	}
	if logname := konf.GetString("logfile"); logname != "" && logname != "stderr" {
		if strings.Contains(logname, ":/") {
			konf.Set("tracing.destination", logname)
		} else {
			konf.Set("tracing.destination", "file://"+logname)
		}
	}
	return err
}

func configureTracing(konf *koanfadapter.KConf) error {
	if a := konf.GetString("tracing.adapter"); a != "" && a != "go" {
		tracing.Errorf("tracing adapter type '%s' currently not supported", a)
	}
	konf.Set("tracing.adapter", "go") // use Go builtin logging facilities
	tracing.Infof("searching for trace redirection")
	paths := locatePaths()
	if dest := konf.GetString("tracing.destination"); dest != "" {
		if !strings.Contains(dest, ":") && paths.ConfigDir() != "" {
			dest = "file://" + paths.ConfigDir() + "/" + dest
			konf.Set("tracing.destination", dest)
		}
	}
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(konf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	tracing.Infof(rootCmd.Long)
	return nil
}

func locatePaths() AppPaths {
	paths, err := DefaultAppPaths(appTag)
	if err != nil {
		tracing.Errorf("cannot configure paths: %v", err)
	}
	return paths
}

// evaluatorConfig builds the settings for line evaluation from the
// configuration. A missing configuration yields the defaults.
func evaluatorConfig(k *koanf.Koanf) evaluator.Config {
	conf := evaluator.Config{Radix: radix.DefaultOptions}
	if k == nil {
		return conf
	}
	conf.Latex = k.Bool("latex")
	if p := k.Int("precision"); p > 0 {
		conf.Radix.Precision = int32(p)
	} else if k.Exists("precision") {
		tracer().Errorf("ignoring precision %d, using %d", p, conf.Radix.Precision)
	}
	if n := k.Int("fraction-digits"); n > 0 {
		conf.Radix.FractionDigits = n
	} else if k.Exists("fraction-digits") {
		tracer().Errorf("ignoring fraction-digits %d, using %d", n, conf.Radix.FractionDigits)
	}
	return conf
}
