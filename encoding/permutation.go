package encoding

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ericr/lexleader/lit"
	"github.com/ericr/lexleader/symmetry"
)

// intTokens is a comment-skipping stream of whitespace-separated integers,
// mirroring the permissive tokenizing style of the reference parser: a line
// beginning with "c" is a comment, everything else is fields of ints.
type intTokens struct {
	scanner *bufio.Scanner
	pending []string
}

func newIntTokens(r io.Reader) *intTokens {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	return &intTokens{scanner: s}
}

func (t *intTokens) next() (int, bool, error) {
	for len(t.pending) == 0 {
		if !t.scanner.Scan() {
			if err := t.scanner.Err(); err != nil {
				return 0, false, err
			}
			return 0, false, nil
		}
		line := strings.TrimSpace(t.scanner.Text())
		if line == "" || strings.HasPrefix(line, "c") {
			continue
		}
		t.pending = strings.Fields(line)
	}
	tok := t.pending[0]
	t.pending = t.pending[1:]
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, false, fmt.Errorf("encoding: bad integer %q: %w", tok, err)
	}
	return v, true, nil
}

// ParsePermutations reads a symmetry-generator file: a leading integer
// giving the generator count (kept for reporting, but the source it was
// ported from reads generators until EOF rather than stopping at that
// count, and this parser matches that), then, for each generator, a
// sequence of "(a b) 0" triples ended by a literal 0. The variable with the
// smaller absolute value maps to the one with the larger; sign encodes
// phase.
func ParsePermutations(r io.Reader) ([]*symmetry.Permutation, error) {
	toks := newIntTokens(r)

	if _, ok, err := toks.next(); err != nil {
		return nil, err
	} else if !ok {
		return nil, fmt.Errorf("encoding: empty permutation file")
	}

	var perms []*symmetry.Permutation
	for {
		perm := symmetry.NewPermutation()
		read := false
		for {
			l1, ok, err := toks.next()
			if err != nil {
				return nil, err
			}
			if !ok || l1 == 0 {
				break
			}
			read = true
			l2, ok, err := toks.next()
			if err != nil {
				return nil, err
			}
			if !ok {
				return nil, fmt.Errorf("encoding: truncated permutation pair")
			}
			if _, _, err := toks.next(); err != nil { // the terminating 0
				return nil, err
			}
			from, to := l1, l2
			if abs(from) > abs(to) {
				from, to = to, from
			}
			if from < 0 {
				continue // only the positive-anchored half of the pair is meaningful
			}
			perm.Add(lit.Var(from-1), lit.FromDimacs(to))
		}
		if !read {
			break
		}
		perm.Normalize()
		perms = append(perms, perm)
	}
	return perms, nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
