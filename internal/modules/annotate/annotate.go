// Package annotate renders Fibonacci terms with the Buzz/Fizz labelling rule.
//
// The naming is deliberately asymmetric: divisible by 3 is "Buzz", by 5 is
// "Fizz", by both is "Buzz Fizz" and a prime is "BuzzFizz".
package annotate

import (
	"io"
	"strconv"

	"github.com/h0tak88r/fibonacciFinder/internal/modules/fibonacci"
	"github.com/h0tak88r/fibonacciFinder/internal/modules/prime"
)

// LineEnding terminates every printed line regardless of platform.
const LineEnding = "\r\n"

// Label is the rendering chosen for one term.
type Label string

const (
	LabelBuzz     Label = "Buzz"
	LabelFizz     Label = "Fizz"
	LabelBuzzFizz Label = "Buzz Fizz"
	LabelPrime    Label = "BuzzFizz"
)

// Classify picks the label for number. First match wins.
func Classify(number fibonacci.Term) Label {
	switch {
	case number == 0:
		return plain(number)
	case number%3 == 0 && number%5 == 0:
		return LabelBuzzFizz
	case number%3 == 0:
		return LabelBuzz
	case number%5 == 0:
		return LabelFizz
	case prime.IsPrime(uint64(number)):
		return LabelPrime
	default:
		return plain(number)
	}
}

func plain(number fibonacci.Term) Label {
	return Label(strconv.FormatUint(uint64(number), 10))
}

// Printer writes one classified line per emitted term. It satisfies
// fibonacci.Emitter.
//
// The first write error is kept and every later Emit becomes a no-op.
type Printer struct {
	w     io.Writer
	lines int
	err   error
}

// NewPrinter returns a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

func (p *Printer) Emit(t fibonacci.Term) {
	if p.err != nil {
		return
	}
	if _, err := io.WriteString(p.w, string(Classify(t))+LineEnding); err != nil {
		p.err = err
		return
	}
	p.lines++
}

// Lines returns how many lines were written successfully.
func (p *Printer) Lines() int { return p.lines }

// Err returns the first write error, if any.
func (p *Printer) Err() error { return p.err }
