package cmd

import (
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/claritext/claritext/internal/analyzer"
	"github.com/claritext/claritext/pkg/config"
	"github.com/claritext/claritext/pkg/logging"
)

var (
	// Global flags
	configPath string
	textFlag   string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "claritext [text]",
	Short: "Text complexity reporting for accessibility assessment",
	Long: `claritext computes a multi-dimensional complexity and readability
report for a single text document: classic grade-level formulas,
structural and lexical measures, and pronoun/anaphora density when a
part-of-speech tagger is available for the configured language.

Input is taken from the --text flag, from stdin (a JSON object with a
"text" field, or raw text), or from the first argument. The report is
written to stdout as exactly one line of compact JSON; failures produce
a one-line {"error": ...} object. The exit code is always zero so that
pipe consumers only ever parse the JSON.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runAnalyze,

	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the CLI. It never returns a failing status: every
// outcome, including internal errors, is delivered as a JSON object on
// stdout.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		writeReport(os.Stdout, analyzer.Report{"error": err.Error()})
	}
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to a YAML config override")
	rootCmd.Flags().StringVarP(&textFlag, "text", "t", "", "Text to analyze (overrides stdin and arguments)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Write diagnostics to stderr")
}

func runAnalyze(cmd *cobra.Command, args []string) {
	diag := logging.Silent()
	if verbose {
		diag = logging.Verbose(cmd.ErrOrStderr())
	}

	cfg := config.Load(configPath, diag.Logger("config"))
	engine := analyzer.New(cfg, diag)

	text := readInput(cmd.InOrStdin(), args)
	writeReport(cmd.OutOrStdout(), engine.Analyze(text))
}

// readInput resolves the document text: the --text flag wins, then
// piped stdin (JSON with a "text" field, falling back to raw text),
// then the first positional argument.
func readInput(stdin io.Reader, args []string) string {
	if textFlag != "" {
		return textFlag
	}

	if f, ok := stdin.(*os.File); !ok || !isatty.IsTerminal(f.Fd()) {
		data, err := io.ReadAll(stdin)
		if err == nil && len(strings.TrimSpace(string(data))) > 0 {
			var payload struct {
				Text string `json:"text"`
			}
			if json.Unmarshal(data, &payload) == nil && payload.Text != "" {
				return payload.Text
			}
			return strings.TrimSpace(string(data))
		}
	}

	if len(args) > 0 {
		return args[0]
	}
	return ""
}

// writeReport marshals the report as one line of compact JSON. Even a
// marshaling failure still produces a parseable error object.
func writeReport(out io.Writer, report analyzer.Report) {
	data, err := json.Marshal(report)
	if err != nil {
		data = []byte(`{"error": "report serialization failed"}`)
	}
	data = append(data, '\n')
	_, _ = out.Write(data)
}
