package args_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vbauerster/clikit/args"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		argv        []string
		values      map[string]string
		flags       []string
		positionals []string
	}{
		{
			name: "empty",
			argv: []string{"prog"},
		},
		{
			name:   "equals",
			argv:   []string{"prog", "--out=a=b"},
			values: map[string]string{"out": "a=b"},
		},
		{
			name:   "key value",
			argv:   []string{"prog", "--name", "x", "-n", "3"},
			values: map[string]string{"name": "x", "n": "3"},
		},
		{
			name:  "pending key becomes flag",
			argv:  []string{"prog", "--verbose", "--quiet"},
			flags: []string{"verbose", "quiet"},
		},
		{
			name:        "mixed",
			argv:        []string{"prog", "in.txt", "-v", "--level", "2", "out.txt"},
			values:      map[string]string{"level": "2"},
			flags:       []string{"v"},
			positionals: []string{"in.txt", "out.txt"},
		},
		{
			name:        "single dash is positional",
			argv:        []string{"prog", "-", "--x=1"},
			values:      map[string]string{"x": "1"},
			positionals: []string{"-"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			p := args.New("prog")
			require.NoError(t, p.Parse(test.argv))
			for k, v := range test.values {
				got, ok := p.Get(k)
				assert.True(t, ok, k)
				assert.Equal(t, v, got)
			}
			for _, f := range test.flags {
				assert.True(t, p.HasFlag(f), f)
			}
			assert.Equal(t, len(test.positionals), p.PositionalCount())
			for i, want := range test.positionals {
				got, ok := p.Positional(i)
				assert.True(t, ok)
				assert.Equal(t, want, got)
			}
		})
	}
}

func TestPendingKeyTakesValue(t *testing.T) {
	p := args.New("prog")
	require.NoError(t, p.Parse([]string{"prog", "-v", "--level", "2"}))

	assert.True(t, p.HasFlag("v"))
	assert.False(t, p.HasFlag("level"))
	v, ok := p.Get("level")
	assert.True(t, ok)
	assert.Equal(t, "2", v)
	_, ok = p.Get("v")
	assert.False(t, ok)
}

func TestHelp(t *testing.T) {
	var buf bytes.Buffer
	p := args.New("tool").WithDescription("does things").Option("--out FILE", "write to FILE")
	p.SetOutput(&buf)

	err := p.Parse([]string{"tool", "a", "-h", "b"})
	assert.ErrorIs(t, err, args.ErrHelp)

	want := "-- tool --\n" +
		"does things\n" +
		"\nUsage:\n  tool [options] [args...]\n" +
		"\nOptions:\n" +
		"  -h, --help    Show this help message and exit\n" +
		"  --out FILE    write to FILE\n"
	assert.Equal(t, want, buf.String())
}

func TestPositionalBounds(t *testing.T) {
	p := args.New("prog")
	require.NoError(t, p.Parse([]string{"prog", "one"}))

	_, ok := p.Positional(1)
	assert.False(t, ok)
	_, ok = p.Positional(-1)
	assert.False(t, ok)

	all := p.Positionals()
	all[0] = "changed"
	got, _ := p.Positional(0)
	assert.Equal(t, "one", got)
}

func TestParseResets(t *testing.T) {
	p := args.New("prog")
	require.NoError(t, p.Parse([]string{"prog", "--a=1", "x"}))
	require.NoError(t, p.Parse([]string{"prog"}))

	_, ok := p.Get("a")
	assert.False(t, ok)
	assert.Zero(t, p.PositionalCount())
}

func TestValuesAndFlagsCopies(t *testing.T) {
	p := args.New("prog")
	require.NoError(t, p.Parse([]string{"prog", "--a=1", "-x", "-y"}))

	assert.Equal(t, map[string]string{"a": "1"}, p.Values())
	assert.Equal(t, []string{"x", "y"}, p.Flags())

	p.Values()["a"] = "2"
	v, _ := p.Get("a")
	assert.Equal(t, "1", v)
}
