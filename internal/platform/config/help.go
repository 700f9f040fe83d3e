// internal/platform/config/help.go
package config

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
)

// printUsage writes the full help text, covering the crack mode flags and
// the two standalone generator modes.
func printUsage(fs *pflag.FlagSet) {
	fmt.Fprintln(os.Stderr, "crackx - rule-driven hash cracker")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  crackx [flags]                   run the rules against the target list")
	fmt.Fprintln(os.Stderr, "  crackx filter <file> [len=N] [has=CHARS]")
	fmt.Fprintln(os.Stderr, "                                   print word-list lines matching the predicate")
	fmt.Fprintln(os.Stderr, "  crackx replace <file> <ab> [cd ...]")
	fmt.Fprintln(os.Stderr, "                                   print every substitution variant of each line")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Flags:")
	fmt.Fprint(os.Stderr, fs.FlagUsages())
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Environment: CRACKX_INPUT, CRACKX_OUTPUT, CRACKX_RULES, CRACKX_ERROR_LOG,")
	fmt.Fprintln(os.Stderr, "  CRACKX_ALG, CRACKX_CONFIG, CRACKX_RAW, CRACKX_QUIET, CRACKX_LOG_LEVEL")
}
