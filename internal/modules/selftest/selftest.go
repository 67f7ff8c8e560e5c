// Package selftest verifies the generator against OEIS A000045.
package selftest

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"

	"github.com/h0tak88r/fibonacciFinder/internal/modules/annotate"
	"github.com/h0tak88r/fibonacciFinder/internal/modules/fibonacci"
	"github.com/h0tak88r/fibonacciFinder/internal/modules/utils"
)

// ReferenceLength is the number of terms checked.
const ReferenceLength = 38

// https://oeis.org/A000045
var reference = [ReferenceLength]fibonacci.Term{
	0, 1, 1, 2, 3, 5, 8, 13, 21, 34, 55, 89, 144, 233, 377, 610, 987,
	1597, 2584, 4181, 6765, 10946, 17711, 28657, 46368, 75025, 121393,
	196418, 317811, 514229, 832040, 1346269, 2178309, 3524578, 5702887,
	9227465, 14930352, 24157817,
}

var (
	green = color.New(color.FgGreen)
	red   = color.New(color.FgRed)
)

// Reference returns a copy of the reference table. Index 0 is Term(1).
func Reference() [ReferenceLength]fibonacci.Term {
	return reference
}

// Result summarises a run.
type Result struct {
	Checked  int  // terms compared, including a failing one
	FailedAt int  // 1-indexed position of the mismatch, 0 if none
	Passed   bool // every term matched
}

// Runner checks Nth(i) against the reference table and reports to Out.
type Runner struct {
	Out     io.Writer
	Nth     func(int) fibonacci.Term
	Metrics *utils.Metrics
}

// NewRunner returns a Runner over fibonacci.Nth writing to w.
func NewRunner(w io.Writer) *Runner {
	return &Runner{
		Out:     w,
		Nth:     fibonacci.Nth,
		Metrics: utils.GetMetrics(),
	}
}

// Run verifies terms 1..ReferenceLength in order and stops at the first
// mismatch.
func (r *Runner) Run() Result {
	log := utils.GetLogger()
	var res Result

	for i := 1; i <= ReferenceLength; i++ {
		got, want := r.Nth(i), reference[i-1]
		res.Checked = i
		fmt.Fprintf(r.Out, "Verifying %d-th Fibonacci number %d == %d... ", i, got, want)

		if got != want {
			red.Fprint(r.Out, "FAILED.")
			io.WriteString(r.Out, annotate.LineEnding)
			r.record(false)
			res.FailedAt = i
			log.WithFields(logrus.Fields{
				"position": i,
				"got":      uint64(got),
				"want":     uint64(want),
			}).Error("Self-test failed")
			return res
		}

		green.Fprint(r.Out, "PASSED.")
		io.WriteString(r.Out, annotate.LineEnding)
		r.record(true)
	}

	fmt.Fprint(r.Out, "Test complete. ")
	green.Fprint(r.Out, "PASSED.")
	io.WriteString(r.Out, annotate.LineEnding)
	res.Passed = true
	log.WithField("checked", res.Checked).Info("Self-test passed")
	return res
}

func (r *Runner) record(ok bool) {
	if r.Metrics == nil {
		return
	}
	r.Metrics.IncrementVerified()
	if !ok {
		r.Metrics.IncrementFailures()
	}
}
