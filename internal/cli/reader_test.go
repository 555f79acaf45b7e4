package cli

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineReader_Transcript(t *testing.T) {
	r := NewLineReader(strings.NewReader("~add ex\r\nadd expense 500 for food\n\nshow budget"))
	ctx := context.Background()

	line, err := r.ReadLine(ctx)
	require.NoError(t, err)
	assert.Equal(t, "~add ex", line)

	line, err = r.ReadLine(ctx)
	require.NoError(t, err)
	assert.Equal(t, "add expense 500 for food", line)

	line, err = r.ReadLine(ctx)
	require.NoError(t, err)
	assert.Empty(t, line)

	line, err = r.ReadLine(ctx)
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, "show budget", line)
}

func TestLineReader_CanceledMidLineKeepsText(t *testing.T) {
	pr, pw := io.Pipe()
	defer func() { _ = pw.Close() }()
	r := NewLineReader(pr)

	go func() {
		_, _ = pw.Write([]byte("add exp"))
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := r.ReadLine(ctx)
	require.ErrorIs(t, err, ErrReadCanceled)

	go func() {
		_, _ = pw.Write([]byte("ense 500 for food\n"))
	}()

	line, err := r.ReadLine(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "add expense 500 for food", line)
}

func TestLineReader_AlreadyCanceled(t *testing.T) {
	pr, pw := io.Pipe()
	defer func() { _ = pw.Close() }()
	r := NewLineReader(pr)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.ReadLine(ctx)
	assert.ErrorIs(t, err, ErrReadCanceled)
}

func TestLineReader_ConfirmationWithoutNewline(t *testing.T) {
	r := NewLineReader(strings.NewReader("yes"))

	line, err := r.ReadLine(context.Background())
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, "yes", line)
}
