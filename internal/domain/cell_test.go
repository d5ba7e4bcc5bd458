package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRowCol(t *testing.T) {
	require.Equal(t, 1, Row(11))
	require.Equal(t, 2, Col(11))
	require.Equal(t, 8, Row(80))
	require.Equal(t, 8, Col(80))
}

func TestBoxLeader(t *testing.T) {
	// Top-left box.
	for _, cell := range []int{0, 1, 2, 9, 10, 11, 18, 19, 20} {
		require.Equal(t, 0, BoxLeader(cell), "cell %d", cell)
	}
	// Bottom-right box.
	for _, cell := range []int{60, 61, 62, 69, 70, 71, 78, 79, 80} {
		require.Equal(t, 60, BoxLeader(cell), "cell %d", cell)
	}
	require.Equal(t, 30, BoxLeader(40))
}
