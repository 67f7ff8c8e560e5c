package main

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/h0tak88r/fibonacciFinder/internal/modules/annotate"
	"github.com/h0tak88r/fibonacciFinder/internal/modules/config"
	"github.com/h0tak88r/fibonacciFinder/internal/modules/envloader"
	"github.com/h0tak88r/fibonacciFinder/internal/modules/fibonacci"
	"github.com/h0tak88r/fibonacciFinder/internal/modules/selftest"
	"github.com/h0tak88r/fibonacciFinder/internal/modules/utils"
)

const testFlag = "--test"

var usageLines = []string{
	"Fibonacci Finder v1.0",
	"Calculates and prints the first n numbers of the Fibonacci sequence",
	"Usage: fibonacciFinder [--test] [n]",
	"Example: fibonacciFinder 9",
}

func printUsage(w io.Writer) {
	for _, line := range usageLines {
		io.WriteString(w, line+annotate.LineEnding)
	}
}

func main() {
	// Load .env file if it exists (before resolving config)
	if _, err := envloader.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "[WARN] Failed to load .env file: %v\n", err)
	}

	cfg, err := config.Load(config.GetConfigFile())
	if err != nil {
		fmt.Fprintf(os.Stderr, "[WARN] %v\n", err)
	}
	if err := utils.InitLogger(cfg.Log); err != nil {
		fmt.Fprintf(os.Stderr, "[WARN] Failed to initialize logger: %v\n", err)
	}
	utils.InitMetrics()

	code := run(os.Args[1:], os.Stdout)

	utils.GetLogger().WithFields(logrus.Fields{
		"exit_code": code,
		"metrics":   utils.GetMetrics().GetSnapshot(),
	}).Debug("Run finished")
	utils.CloseLogger()
	os.Exit(code)
}

// run dispatches args and returns the process exit code.
func run(args []string, stdout io.Writer) int {
	log := utils.GetLogger()

	if len(args) != 1 {
		printUsage(stdout)
		return utils.ExitOK
	}

	if args[0] == testFlag {
		selftest.NewRunner(stdout).Run()
		return utils.ExitOK
	}

	n, err := parseEntry(args[0])
	if err != nil {
		log.WithError(err).Warn("Rejected entry")
		io.WriteString(stdout, utils.GetUserFriendlyError(err)+annotate.LineEnding)
		return utils.ExitCode(err)
	}

	log.WithField("n", n).Debug("Generating terms")
	p := annotate.NewPrinter(stdout)
	fibonacci.Generate(n, p)
	utils.GetMetrics().AddTermsGenerated(p.Lines())
	if err := p.Err(); err != nil {
		log.WithError(err).Error("Failed to write output")
	}
	return utils.ExitOK
}

// parseEntry converts arg to a term count. Anything that does not read as a
// positive base-10 integer is an InvalidEntry.
func parseEntry(arg string) (int, error) {
	n := parseLeadingInt(arg)
	if n <= 0 {
		return 0, utils.NewEntryError(arg, n)
	}
	if n > math.MaxInt {
		n = math.MaxInt
	}
	return int(n), nil
}

// parseLeadingInt reads like strtol(s, NULL, 10): leading whitespace, an
// optional sign, then the longest run of decimal digits. No digits yields 0
// and out-of-range values saturate.
func parseLeadingInt(s string) int64 {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}

	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	var n uint64
	overflow := false
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		if overflow {
			continue
		}
		d := uint64(s[i] - '0')
		if n > (math.MaxUint64-d)/10 {
			overflow = true
			continue
		}
		n = n*10 + d
	}

	switch {
	case neg && (overflow || n > math.MaxInt64+1):
		return math.MinInt64
	case neg:
		return -int64(n)
	case overflow || n > math.MaxInt64:
		return math.MaxInt64
	default:
		return int64(n)
	}
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
