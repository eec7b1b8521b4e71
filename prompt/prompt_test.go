package prompt_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vbauerster/clikit/prompt"
)

func TestPrompt(t *testing.T) {
	var out bytes.Buffer
	p := prompt.New(strings.NewReader("  alice \n"), &out)

	got, err := p.Prompt("Name?")
	require.NoError(t, err)
	assert.Equal(t, "alice", got)
	assert.Equal(t, "Name? ", out.String())
}

func TestPromptEOF(t *testing.T) {
	p := prompt.New(strings.NewReader(""), io.Discard)
	_, err := p.Prompt("x")
	assert.ErrorIs(t, err, io.EOF)

	p = prompt.New(strings.NewReader("last"), io.Discard)
	got, err := p.Prompt("x")
	require.NoError(t, err)
	assert.Equal(t, "last", got)
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		def   bool
		want  bool
	}{
		{"\n", true, true},
		{"\n", false, false},
		{"y\n", false, true},
		{"YES\n", false, true},
		{"n\n", true, false},
		{"No\n", true, false},
		{"maybe\ny\n", false, true},
	}
	for _, test := range tests {
		p := prompt.New(strings.NewReader(test.input), io.Discard)
		got, err := p.Confirm("Continue?", test.def)
		require.NoError(t, err, test.input)
		assert.Equal(t, test.want, got, test.input)
	}
}

func TestConfirmHintAndRetry(t *testing.T) {
	var out bytes.Buffer
	p := prompt.New(strings.NewReader("what\nn\n"), &out)

	got, err := p.Confirm("Delete?", true)
	require.NoError(t, err)
	assert.False(t, got)
	assert.Equal(t, 2, strings.Count(out.String(), "Delete? [Y/n]:"))
	assert.Contains(t, out.String(), "Enter y or n")
}

func TestConfirmEOFReturnsDefault(t *testing.T) {
	p := prompt.New(strings.NewReader(""), io.Discard)
	got, err := p.Confirm("x", true)
	assert.ErrorIs(t, err, io.EOF)
	assert.True(t, got)
}

func TestSelect(t *testing.T) {
	var out bytes.Buffer
	p := prompt.New(strings.NewReader("0\nfoo\n2\n"), &out)

	got, err := p.Select("Pick", []string{"red", "green", "blue"})
	require.NoError(t, err)
	assert.Equal(t, 1, got)
	assert.Contains(t, out.String(), "  1. red\n  2. green\n  3. blue\n")
	assert.Equal(t, 2, strings.Count(out.String(), "Enter a valid number (1-3)"))
}

func TestSelectErrors(t *testing.T) {
	p := prompt.New(strings.NewReader("1\n"), io.Discard)
	_, err := p.Select("Pick", nil)
	assert.ErrorIs(t, err, prompt.ErrNoOptions)

	p = prompt.New(strings.NewReader("9\n"), io.Discard)
	got, err := p.Select("Pick", []string{"a"})
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, -1, got)
}

func TestReadPassword(t *testing.T) {
	var out bytes.Buffer
	p := prompt.New(strings.NewReader(" s3cret \n"), &out)

	got, err := p.ReadPassword("Password:")
	require.NoError(t, err)
	assert.Equal(t, " s3cret ", got)
	assert.Equal(t, "Password: ", out.String())
}

func TestReadMultiline(t *testing.T) {
	var out bytes.Buffer
	p := prompt.New(strings.NewReader("line one\nline two\n"), &out)

	got, err := p.ReadMultiline("Notes")
	require.NoError(t, err)
	assert.Equal(t, "line one\nline two\n", got)
	assert.Contains(t, out.String(), "begin input")
	assert.Contains(t, out.String(), "end input")
}
