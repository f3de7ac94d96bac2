package model

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayRendersInteriorOnly(t *testing.T) {
	b, err := NewBoard(3, 2)
	require.NoError(t, err)
	b.Set(0, 0, true)
	b.Set(2, 1, true)

	var buf bytes.Buffer
	r := &TerminalRenderer{Out: &buf}
	r.Display(b)

	want := strings.Join([]string{
		gridPosBlock + gridPosEmpty + gridPosEmpty,
		gridPosEmpty + gridPosEmpty + gridPosBlock,
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}
