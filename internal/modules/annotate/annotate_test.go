package annotate

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/h0tak88r/fibonacciFinder/internal/modules/fibonacci"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		number fibonacci.Term
		want   Label
	}{
		{0, "0"},
		{1, "1"},
		{2, "BuzzFizz"},
		{3, "Buzz"},
		{5, "Fizz"},
		{7, "BuzzFizz"},
		{8, "8"},
		{13, "BuzzFizz"},
		{15, "Buzz Fizz"},
		{21, "Buzz"},
		{55, "Fizz"},
		{610, "Fizz"},
		{832040, "Fizz"},
		{6765, "Buzz Fizz"},
		{34, "34"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.number), "Classify(%d)", tt.number)
	}
}

func TestPrinter_FirstNineTerms(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	fibonacci.Generate(9, p)

	require.NoError(t, p.Err())
	assert.Equal(t, 9, p.Lines())
	want := "0\r\n1\r\n1\r\nBuzzFizz\r\nBuzz\r\nFizz\r\n8\r\nBuzzFizz\r\nBuzz\r\n"
	assert.Equal(t, want, buf.String())
}

type failingWriter struct {
	calls int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	w.calls++
	return 0, errors.New("disk full")
}

func TestPrinter_StickyError(t *testing.T) {
	w := &failingWriter{}
	p := NewPrinter(w)

	fibonacci.Generate(5, p)

	require.EqualError(t, p.Err(), "disk full")
	assert.Equal(t, 1, w.calls)
	assert.Zero(t, p.Lines())
}
