package encoding

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericr/lexleader/lit"
)

func TestParsePermutationsReadsMultiplePairsPerGenerator(t *testing.T) {
	perms, err := ParsePermutations(strings.NewReader("1\n1 2 0 3 4 0 0\n"))
	require.NoError(t, err)
	require.Len(t, perms, 1)

	p := perms[0]
	assert.Equal(t, []lit.Var{0, 2}, p.Support)
	assert.Equal(t, lit.New(1, false), p.At(0))
	assert.Equal(t, lit.New(3, false), p.At(2))
}

func TestParsePermutationsKeepsOnlyThePositiveAnchoredHalf(t *testing.T) {
	// A pair whose smaller-magnitude literal is negative is the mirror of
	// a pair recorded elsewhere with a positive anchor, and contributes
	// nothing on its own.
	perms, err := ParsePermutations(strings.NewReader("1\n-1 2 0 0\n"))
	require.NoError(t, err)
	require.Len(t, perms, 1)
	assert.Empty(t, perms[0].Support)
}

func TestParsePermutationsReadsUntilEOFNotLeadingCount(t *testing.T) {
	// The leading integer is informational; the parser must keep reading
	// generators for as long as the file has them, even when that count
	// understates or overstates the true number of generators.
	perms, err := ParsePermutations(strings.NewReader("99\n1 2 0 0\n3 4 0 0\n"))
	require.NoError(t, err)
	require.Len(t, perms, 2)
	assert.Equal(t, []lit.Var{0}, perms[0].Support)
	assert.Equal(t, []lit.Var{2}, perms[1].Support)
}

func TestParsePermutationsSkipsCommentLines(t *testing.T) {
	perms, err := ParsePermutations(strings.NewReader("c header\n1\nc a pair\n1 2 0 0\n"))
	require.NoError(t, err)
	require.Len(t, perms, 1)
	assert.Equal(t, []lit.Var{0}, perms[0].Support)
}

func TestParsePermutationsRejectsEmptyFile(t *testing.T) {
	_, err := ParsePermutations(strings.NewReader(""))
	assert.Error(t, err)
}

func TestParsePermutationsRejectsTruncatedPair(t *testing.T) {
	_, err := ParsePermutations(strings.NewReader("1\n1\n"))
	assert.Error(t, err)
}
