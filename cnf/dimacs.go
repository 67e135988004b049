package cnf

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseDIMACS reads a CNF formula in DIMACS format from r.
//
// Accepted shape (whitespace-tolerant):
//   - blank lines anywhere;
//   - comment lines starting with "c", ignored wholesale;
//   - exactly one header line "p cnf <nVars> <nClauses>" before any clause;
//   - clauses as runs of space-separated literals terminated by "0",
//     possibly spanning several lines or sharing one.
//
// The declared clause count is advisory: the clauses actually present win,
// matching the tolerant readers used by common solvers. Literal ranges are
// still enforced against the declared variable count.
//
// Errors: ErrBadDIMACS (wrapped with line context), plus Formula.Validate
// sentinels for out-of-range literals.
func ParseDIMACS(r io.Reader) (Formula, error) {
	var (
		f         Formula
		cur       Clause
		sawHeader bool
		lineNo    int
	)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "c") {
			continue
		}
		if strings.HasPrefix(line, "p") {
			if sawHeader {
				return Formula{}, fmt.Errorf("line %d: duplicate header: %w", lineNo, ErrBadDIMACS)
			}
			fields := strings.Fields(line)
			if len(fields) != 4 || fields[0] != "p" || fields[1] != "cnf" {
				return Formula{}, fmt.Errorf("line %d: bad header %q: %w", lineNo, line, ErrBadDIMACS)
			}
			nVars, err := strconv.Atoi(fields[2])
			if err != nil {
				return Formula{}, fmt.Errorf("line %d: variable count: %w", lineNo, ErrBadDIMACS)
			}
			if _, err = strconv.Atoi(fields[3]); err != nil {
				return Formula{}, fmt.Errorf("line %d: clause count: %w", lineNo, ErrBadDIMACS)
			}
			f.Vars = nVars
			sawHeader = true

			continue
		}
		if !sawHeader {
			return Formula{}, fmt.Errorf("line %d: clause before header: %w", lineNo, ErrBadDIMACS)
		}
		for _, tok := range strings.Fields(line) {
			lit, err := strconv.Atoi(tok)
			if err != nil {
				return Formula{}, fmt.Errorf("line %d: token %q: %w", lineNo, tok, ErrBadDIMACS)
			}
			if lit == 0 {
				f.Clauses = append(f.Clauses, cur)
				cur = nil

				continue
			}
			cur = append(cur, Literal(lit))
		}
	}
	if err := sc.Err(); err != nil {
		return Formula{}, fmt.Errorf("cnf: read DIMACS: %w", err)
	}
	if !sawHeader {
		return Formula{}, fmt.Errorf("missing header: %w", ErrBadDIMACS)
	}
	// Tolerate a final clause missing its 0 terminator.
	if len(cur) > 0 {
		f.Clauses = append(f.Clauses, cur)
	}
	if err := f.Validate(); err != nil {
		return Formula{}, err
	}

	return f, nil
}

// ParseDIMACSString is ParseDIMACS over an in-memory string.
func ParseDIMACSString(text string) (Formula, error) {
	return ParseDIMACS(strings.NewReader(text))
}

// DIMACS serializes f in canonical DIMACS form: the "p cnf" header, then
// one clause per line, literals space-separated and terminated by "0".
// Emission is fixed-format, so equal formulas emit byte-identical text.
//
// Complexity: O(total number of literals).
func (f Formula) DIMACS() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "p cnf %d %d\n", f.Vars, len(f.Clauses))
	for _, c := range f.Clauses {
		for _, l := range c {
			sb.WriteString(strconv.Itoa(int(l)))
			sb.WriteByte(' ')
		}
		sb.WriteString("0\n")
	}

	return sb.String()
}

// WriteDIMACS writes the canonical DIMACS form of f to w.
func (f Formula) WriteDIMACS(w io.Writer) error {
	if _, err := io.WriteString(w, f.DIMACS()); err != nil {
		return fmt.Errorf("cnf: write DIMACS: %w", err)
	}

	return nil
}
