package schedule

import "strconv"

// infinitySymbol marks a pair absent from the dispatchable graph.
const infinitySymbol = "∞"

// DumpConstraintTable compiles if dirty, then produces an
// (N+1)x(N+1) matrix of strings: row 0 and column 0 carry event IDs as
// headers (corner cell is empty), and cell (i,j) is w*(i->j) rendered
// as a trimmed decimal, or infinitySymbol when the pair is absent from
// the dispatchable graph. Used for debugging; the format is not an
// external contract.
func (s *Schedule) DumpConstraintTable() ([][]string, error) {
	if err := s.Compile(); err != nil {
		return nil, err
	}

	nodes := s.graph.Nodes()
	n := len(nodes) + 1

	table := make([][]string, n)
	for row := range table {
		table[row] = make([]string, n)
	}

	for pos, id := range nodes {
		header := strconv.Itoa(int(id))
		table[0][pos+1] = header
		table[pos+1][0] = header
	}

	for pi, u := range nodes {
		for pj, v := range nodes {
			w, ok := s.dispatchable.Weight(u, v)
			if !ok {
				table[pi+1][pj+1] = infinitySymbol
				continue
			}
			table[pi+1][pj+1] = strconv.FormatFloat(w, 'f', -1, 64)
		}
	}

	return table, nil
}
