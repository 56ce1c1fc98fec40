package encoding

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDIMACSSkipsCommentsAndHeader(t *testing.T) {
	in := strings.NewReader("c a comment\np cnf 3 2\n1 -2 0\n2 3 0\n")
	cnf, err := ParseDIMACS(in)
	require.NoError(t, err)

	assert.Equal(t, 3, cnf.NVars)
	assert.Equal(t, 2, cnf.NClauses)
	assert.Equal(t, [][]int{{1, -2}, {2, 3}}, cnf.Clauses)
}

func TestParseDIMACSUsesActualClauseCountWhenItDiffersFromHeader(t *testing.T) {
	in := strings.NewReader("p cnf 2 99\n1 2 0\n-1 0\n")
	cnf, err := ParseDIMACS(in)
	require.NoError(t, err)

	assert.Len(t, cnf.Clauses, 2, "the header's declared count is informational, not authoritative")
}

func TestParseDIMACSRejectsMissingHeader(t *testing.T) {
	_, err := ParseDIMACS(strings.NewReader("1 2 0\n"))
	assert.Error(t, err)
}

func TestParseDIMACSRejectsMalformedHeader(t *testing.T) {
	_, err := ParseDIMACS(strings.NewReader("p wff 2 1\n1 0\n"))
	assert.Error(t, err)
}

func TestWriteDIMACSRenumbersLiveVariablesDensely(t *testing.T) {
	var buf strings.Builder
	liveVars := []int{2, 5}
	clauses := []LiveClause{{2, -5}, {5}}

	require.NoError(t, WriteDIMACS(&buf, liveVars, clauses, nil))

	out := buf.String()
	assert.Contains(t, out, "p cnf 2 2\n")
	assert.Contains(t, out, "1 -2 0\n")
	assert.Contains(t, out, "2 0\n")
}

func TestWriteDIMACSAppendsAssumptionsAsUnitClauses(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, WriteDIMACS(&buf, []int{1, 2}, nil, []int{-2}))

	out := buf.String()
	assert.Contains(t, out, "p cnf 2 1\n")
	assert.Contains(t, out, "-2 0\n")
}

func TestWriteDIMACSDropsLiteralsOutsideLiveVars(t *testing.T) {
	var buf strings.Builder
	// Variable 3 was eliminated at the root and isn't in liveVars; a
	// clause mentioning it should emit only its still-live literals.
	require.NoError(t, WriteDIMACS(&buf, []int{1}, []LiveClause{{1, 3}}, nil))

	out := buf.String()
	assert.Contains(t, out, "p cnf 1 1\n")
	assert.Contains(t, out, "1 0\n")
	assert.NotContains(t, out, "3")
}
