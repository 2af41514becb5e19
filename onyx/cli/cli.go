package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/onyx"
	"github.com/npillmayer/onyx/engine/luaengine"
	"github.com/npillmayer/onyx/evaluator"
	"github.com/npillmayer/onyx/literals"
	"github.com/npillmayer/onyx/notation"
	"github.com/npillmayer/onyx/notebook"
	"github.com/npillmayer/onyx/notebook/nbstore"
	"github.com/npillmayer/onyx/onyx/ui/termui"
	"github.com/npillmayer/onyx/radix"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "onyx",
	Short: "A notebook for math in LaTeX-like notation",
	Long: `Welcome to Onyx V` + onyx.Version + `

Onyx evaluates math written in a LaTeX-like notation, line by line.
Numbers may be written in any base (e.g., FF_{16} or 1010_2 \to b_{16}),
and variables declared on one line (x = 5) are visible on the lines below.

Onyx is able to run in interactive mode or evaluate notebooks in batch-mode.

`,
	Run: runOnyxCmd,
}

var evalCmd = &cobra.Command{
	Use:   "eval FILE...",
	Short: "Evaluate notebook files",
	Long: `Evaluate notebook files and print every line with its outcome.

Files with extension .onyx are notebooks saved by an interactive session.
Any other file is read as text, one notebook line per line of text.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEvalCmd,
}

var transcodeCmd = &cobra.Command{
	Use:   "transcode EXPR...",
	Short: "Transcribe expressions from onyx to infix notation (or back)",
	Args:  cobra.MinimumNArgs(1),
	Run:   runTranscodeCmd,
}

var convertCmd = &cobra.Command{
	Use:   "convert TEXT...",
	Short: "Convert based-number literals in text",
	Args:  cobra.MinimumNArgs(1),
	Run:   runConvertCmd,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called exactly once by main().
func Execute() {
	if rootCmd.Execute() != nil {
		onyx.Exit(2)
	}
}

func init() {
	cobra.OnInitialize(loadConfig)
	// persistent flags which will be global for the application
	rootCmd.PersistentFlags().String("logfile", "stderr", "URL of log output location")
	rootCmd.PersistentFlags().Bool("latex", false, "Ask the algebra engine for LaTeX output")
	rootCmd.PersistentFlags().Int("precision", int(radix.DefaultOptions.Precision),
		"Decimal places kept for non-terminating divisions")
	rootCmd.PersistentFlags().Int("fraction-digits", radix.DefaultOptions.FractionDigits,
		"Maximum fractional digits when converting into a base")
	transcodeCmd.Flags().BoolP("reverse", "r", false, "Transcribe infix to onyx notation")
	rootCmd.AddCommand(evalCmd, transcodeCmd, convertCmd)
}

// newEvaluator creates an evaluator from the global configuration.
func newEvaluator() *evaluator.Evaluator {
	return evaluator.New(luaengine.New(), evaluatorConfig(onyx.Configuration))
}

func runOnyxCmd(cmd *cobra.Command, args []string) {
	tracing.Infof("onyx notebook session called")
	session, err := newSession(newEvaluator(), locatePaths())
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot start session: %v\n", err)
		onyx.Exit(1)
	}
	session.Prompt(true)
}

func runEvalCmd(cmd *cobra.Command, args []string) error {
	ev := newEvaluator()
	ctx := onyx.SignalContext
	for _, name := range args {
		nb, err := readNotebook(ctx, name)
		if err != nil {
			return err
		}
		if err := ev.EvaluateAll(ctx, nb); err != nil {
			return err
		}
		if _, err := (Formatter{}).Format(notebookTable(filepath.Base(name), nb.Lines()), cmd.OutOrStdout()); err != nil {
			return err
		}
	}
	return nil
}

// readNotebook reads a saved notebook or a text file.
func readNotebook(ctx context.Context, name string) (*notebook.Store, error) {
	if filepath.Ext(name) == notebookExt {
		return nbstore.Load(ctx, name)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readLines(f)
}

// readLines creates a notebook with a line for every line of text.
func readLines(r io.Reader) (*notebook.Store, error) {
	nb := notebook.New(0)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		nb.Append(scanner.Text())
	}
	return nb, scanner.Err()
}

func runTranscodeCmd(cmd *cobra.Command, args []string) {
	reverse, _ := cmd.Flags().GetBool("reverse")
	expr := strings.Join(args, " ")
	if reverse {
		fmt.Fprintln(cmd.OutOrStdout(), notation.ToOnyx(expr))
		return
	}
	fmt.Fprintln(cmd.OutOrStdout(), notation.ToInfix(expr))
}

func runConvertCmd(cmd *cobra.Command, args []string) {
	opts := evaluatorConfig(onyx.Configuration).Radix
	sc := literals.NewScanner(radix.NewConverter(opts))
	fmt.Fprintln(cmd.OutOrStdout(), sc.Normalize(strings.Join(args, " ")))
}

var _ termui.Formatter = Formatter{}
