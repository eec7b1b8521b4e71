package prompt

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnimatedWait(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader(""), &out)
	p.tick = time.Millisecond

	require.NoError(t, p.AnimatedWait(context.Background(), "Working", 4*time.Millisecond))
	assert.Equal(t, "Working....done\n", out.String())
}

func TestAnimatedWaitCancel(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader(""), &out)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := p.AnimatedWait(ctx, "Working", time.Hour)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, "Working.\n", out.String())
}

func TestAnimatedWaitZero(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader(""), &out)

	require.NoError(t, p.AnimatedWait(context.Background(), "Now", 0))
	assert.Equal(t, "Nowdone\n", out.String())
}
