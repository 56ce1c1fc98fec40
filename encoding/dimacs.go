// Package encoding implements the mechanical, out-of-core collaborators
// named in the solver's external interfaces: DIMACS CNF parsing and
// writeback, and permutation-file parsing.
package encoding

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
)

// CNF is the parsed contents of a DIMACS file: the declared variable/clause
// counts from the "p cnf V C" header, and each clause as signed, one-indexed
// literals terminated (in the source) by 0.
type CNF struct {
	NVars   int
	NClauses int
	Clauses [][]int
}

// ParseDIMACS reads a DIMACS CNF file. Comment lines ("c ...") are skipped;
// the "p cnf V C" header is read for its declared sizes but the actual
// clause count is whatever the file contains.
func ParseDIMACS(in io.Reader) (*CNF, error) {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	cnf := &CNF{Clauses: [][]int{}}
	sawHeader := false

	for scanner.Scan() {
		fields := bytes.Fields(scanner.Bytes())
		if len(fields) == 0 {
			continue
		}
		switch string(fields[0]) {
		case "c":
			continue
		case "p":
			if len(fields) < 4 || string(fields[1]) != "cnf" {
				return nil, fmt.Errorf("encoding: malformed DIMACS header %q", scanner.Text())
			}
			nVars, err := strconv.Atoi(string(fields[2]))
			if err != nil {
				return nil, fmt.Errorf("encoding: bad variable count: %w", err)
			}
			nClauses, err := strconv.Atoi(string(fields[3]))
			if err != nil {
				return nil, fmt.Errorf("encoding: bad clause count: %w", err)
			}
			cnf.NVars, cnf.NClauses = nVars, nClauses
			sawHeader = true
		default:
			clause := make([]int, 0, len(fields))
			for _, field := range fields {
				p, err := strconv.Atoi(string(field))
				if err != nil {
					return nil, fmt.Errorf("encoding: bad literal %q: %w", field, err)
				}
				if p != 0 {
					clause = append(clause, p)
				}
			}
			cnf.Clauses = append(cnf.Clauses, clause)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if !sawHeader {
		return nil, fmt.Errorf("encoding: missing DIMACS header")
	}
	return cnf, nil
}

// LiveClause is a still-relevant clause, expressed with the original,
// one-indexed problem variable numbering.
type LiveClause []int

// WriteDIMACS emits a DIMACS file for the given live variables and clauses,
// renumbering variables to a dense 1..len(liveVars) range and appending each
// assumption literal as a unit clause, per spec.md §6.
func WriteDIMACS(w io.Writer, liveVars []int, clauses []LiveClause, assumptions []int) error {
	renumber := make(map[int]int, len(liveVars))
	for i, v := range liveVars {
		renumber[v] = i + 1
	}
	remap := func(lit int) (int, bool) {
		v := lit
		neg := false
		if v < 0 {
			v, neg = -v, true
		}
		nv, ok := renumber[v]
		if !ok {
			return 0, false
		}
		if neg {
			return -nv, true
		}
		return nv, true
	}

	total := len(clauses) + len(assumptions)
	if _, err := fmt.Fprintf(w, "p cnf %d %d\n", len(liveVars), total); err != nil {
		return err
	}
	for _, c := range clauses {
		for _, l := range c {
			nl, ok := remap(l)
			if !ok {
				continue
			}
			if _, err := fmt.Fprintf(w, "%d ", nl); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprint(w, "0\n"); err != nil {
			return err
		}
	}
	for _, a := range assumptions {
		nl, ok := remap(a)
		if !ok {
			continue
		}
		if _, err := fmt.Fprintf(w, "%d 0\n", nl); err != nil {
			return err
		}
	}
	return nil
}
