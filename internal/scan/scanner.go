package scan

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/corvusworks/seedscan/internal/criteria"
)

// Source is one openable catalog file. Opening returns decoded text; the
// scanner itself is encoding-agnostic.
type Source interface {
	Name() string
	Open() (io.ReadCloser, error)
}

// Scanner drives one sequential pass of the compiled query over a list
// of catalog sources, in list order, stopping once the query's match
// target is reached.
type Scanner struct {
	Query *criteria.Query

	// Trace, when set, is called with each source's name before it is
	// scanned.
	Trace func(name string)

	found    uint32
	complete bool
}

// Found returns the number of seeds committed as successful so far.
func (s *Scanner) Found() uint32 { return s.found }

// Complete reports whether the match target was reached.
func (s *Scanner) Complete() bool { return s.complete }

// Run scans every source in order. A source that fails to open or that
// contains malformed data stops scanning of that source only; seeds
// already committed from it, and from earlier sources, are kept. The
// returned error joins all per-source failures.
func (s *Scanner) Run(sources []Source) ([]Match, error) {
	var (
		results []Match
		errs    []error
	)

	for _, src := range sources {
		if s.Trace != nil {
			s.Trace(src.Name())
		}
		rc, err := src.Open()
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", src.Name(), err))
			continue
		}
		done, err := s.scanReader(rc, &results)
		rc.Close()
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", src.Name(), err))
		}
		if done {
			s.complete = true
			break
		}
	}

	return results, errors.Join(errs...)
}

// scanReader runs the per-seed state machine over one decoded file.
// It returns true once the query's match target has been reached.
func (s *Scanner) scanReader(r io.Reader, results *[]Match) (bool, error) {
	rdr := csv.NewReader(r)

	header, err := rdr.Read()
	if err != nil {
		return false, fmt.Errorf("reading header: %w", err)
	}
	if err := validateHeader(header); err != nil {
		return false, err
	}

	q := s.Query
	q.ResetSeed()

	var (
		buffer    []Match
		prevSeed  uint32
		started   bool
		satisfied bool
		earlyExit bool
	)

	// commit resolves the finished seed: a provisionally satisfied seed
	// is re-validated and its buffered matches copied out. Per-seed state
	// is cleared either way. Returns true when the match target is met.
	commit := func() bool {
		if satisfied && !earlyExit && q.AllValid() {
			*results = append(*results, buffer...)
			s.found++
			if q.MatchTarget != 0 && s.found >= q.MatchTarget {
				return true
			}
		}
		satisfied = false
		earlyExit = false
		buffer = buffer[:0]
		q.ResetSeed()
		return false
	}

	for {
		record, err := rdr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return false, err
		}
		row, err := parseRow(record)
		if err != nil {
			return false, err
		}

		// Seed boundaries are detected on every row, in or out of
		// bounds, so seed-scoped state stays aligned with the stream.
		if started && row.Seed != prevSeed {
			if commit() {
				return true, nil
			}
		}
		prevSeed = row.Seed
		started = true

		// An early exit abandons the seed: remaining rows are consumed
		// only to reach the next boundary.
		if earlyExit {
			continue
		}
		if row.Seed < q.SeedMin || row.Seed > q.SeedMax ||
			row.Depth < q.DepthMin || row.Depth > q.DepthMax {
			continue
		}

		m, ok := evaluate(row, q)
		if !ok {
			continue
		}
		switch m.Outcome {
		case criteria.EarlyExit:
			earlyExit = true
			satisfied = false
		case criteria.Increment:
			buffer = append(buffer, m)
			if q.AllValid() {
				satisfied = true
			}
		default:
			buffer = append(buffer, m)
		}
	}

	// The last seed in the file has no boundary row; it resolves at EOF.
	if started && commit() {
		return true, nil
	}
	return false, nil
}
