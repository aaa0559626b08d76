package console

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadBoundedInt_AcceptsInRangeValue(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("5\n"), &out)

	value, err := p.ReadBoundedInt(1, 8)
	require.NoError(t, err)
	assert.Equal(t, 5, value)
}

func TestReadBoundedInt_RepromptsOnMalformedInput(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("abc\n\n4.5\n3\n"), &out)

	value, err := p.ReadBoundedInt(1, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, value)
	assert.Contains(t, out.String(), "Invalid input. Please enter a number:")
}

func TestReadBoundedInt_RepromptsOnOutOfRange(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("0\n9\n2\n"), &out)

	value, err := p.ReadBoundedInt(1, 8)
	require.NoError(t, err)
	assert.Equal(t, 2, value)
	assert.Contains(t, out.String(), "Please enter a number between 1 and 8:")
}

func TestReadBoundedInt_TrimsSurroundingWhitespace(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("  7 \n"), &out)

	value, err := p.ReadBoundedInt(1, 8)
	require.NoError(t, err)
	assert.Equal(t, 7, value)
}

func TestReadBoundedInt_EOFWhenInputExhausted(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("notanumber\n"), &out)

	_, err := p.ReadBoundedInt(1, 8)
	assert.ErrorIs(t, err, io.EOF)
}

func TestReadContinue(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("\n"), &out)

	require.NoError(t, p.ReadContinue())
	assert.Contains(t, out.String(), "Press Enter to continue...")

	assert.ErrorIs(t, p.ReadContinue(), io.EOF)
}
