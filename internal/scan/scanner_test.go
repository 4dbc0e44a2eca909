package scan

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/corvusworks/seedscan/internal/catalog"
	"github.com/corvusworks/seedscan/internal/criteria"
)

const testHeader = "dungeon_version,seed,depth,quantity,category,kind," +
	"enchantment,runic,vault_number,opens_vault_number," +
	"carried_by_monster_name,ally_status_name,mutation_name"

// stringSource feeds an in-memory catalog to the scanner.
type stringSource struct {
	name string
	data string
}

func (s stringSource) Name() string { return s.name }

func (s stringSource) Open() (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(s.data)), nil
}

type failingSource struct{}

func (failingSource) Name() string                 { return "missing.csv" }
func (failingSource) Open() (io.ReadCloser, error) { return nil, errors.New("open failed") }

func catalogData(rows ...string) string {
	return testHeader + "\n" + strings.Join(rows, "\n") + "\n"
}

func goldRow(seed uint32, depth uint8, quantity uint32) string {
	return fmt.Sprintf("1.13,%d,%d,%d,gold,gold pieces (2 piles),,,,,,,", seed, depth, quantity)
}

func armorRow(seed uint32, depth uint8, kind string, ench int8, runic string) string {
	return fmt.Sprintf("1.13,%d,%d,1,armor,%s,%d,%s,,,,,", seed, depth, kind, ench, runic)
}

func potionRow(seed uint32, depth uint8, kind string) string {
	return fmt.Sprintf("1.13,%d,%d,1,potion,%s,,,,,,,", seed, depth, kind)
}

func newTestQuery(t *testing.T, criteriaList []*criteria.Criterion, target uint32) *criteria.Query {
	t.Helper()
	q, err := criteria.NewQuery(
		criteria.Bounds{SeedMin: 1, SeedMax: 4294967295, DepthMin: 1, DepthMax: 26},
		criteriaList, target,
	)
	if err != nil {
		t.Fatalf("building query: %v", err)
	}
	return q
}

func goldCriterion(target uint32, mode criteria.CountMode) *criteria.Criterion {
	return &criteria.Criterion{
		Category:    catalog.Gold,
		Mask:        catalog.Gold.Mask(),
		CountTarget: target,
		Mode:        mode,
		Depth:       26,
	}
}

func armorCriterion(kind string) *criteria.Criterion {
	return &criteria.Criterion{
		Category:    catalog.Armor,
		Mask:        catalog.Armor.Mask(),
		CountTarget: 1,
		Depth:       26,
		Kind:        kind,
	}
}

func TestScanLastSeedResolvesAtEOF(t *testing.T) {
	data := catalogData(
		goldRow(7, 2, 300),
		goldRow(7, 4, 300),
	)
	s := Scanner{Query: newTestQuery(t, []*criteria.Criterion{goldCriterion(500, criteria.AtLeast)}, 10)}

	results, err := s.Run([]Source{stringSource{name: "a.csv", data: data}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Found() != 1 {
		t.Fatalf("expected 1 matching seed, got %d", s.Found())
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 buffered matches, got %d", len(results))
	}
	if results[0].Seed != 7 {
		t.Errorf("expected seed 7, got %d", results[0].Seed)
	}
}

func TestScanSeedBoundaryCommit(t *testing.T) {
	data := catalogData(
		goldRow(1, 2, 600),
		goldRow(2, 3, 100),
		goldRow(3, 1, 900),
	)
	s := Scanner{Query: newTestQuery(t, []*criteria.Criterion{goldCriterion(500, criteria.AtLeast)}, 10)}

	results, err := s.Run([]Source{stringSource{name: "a.csv", data: data}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Found() != 2 {
		t.Fatalf("expected 2 matching seeds, got %d", s.Found())
	}
	seeds := map[uint32]bool{}
	for _, m := range results {
		seeds[m.Seed] = true
	}
	if !seeds[1] || !seeds[3] || seeds[2] {
		t.Errorf("expected seeds 1 and 3 only, got %v", seeds)
	}
}

func TestScanEqualToOvershootRejectsSeed(t *testing.T) {
	data := catalogData(goldRow(5, 2, 7))
	s := Scanner{Query: newTestQuery(t, []*criteria.Criterion{goldCriterion(5, criteria.EqualTo)}, 10)}

	results, err := s.Run([]Source{stringSource{name: "a.csv", data: data}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Found() != 0 || len(results) != 0 {
		t.Fatalf("expected no matching seeds, got %d seeds %d matches", s.Found(), len(results))
	}
}

func TestScanEarlyExitAbandonsRestOfSeed(t *testing.T) {
	// The gold cap fires on the second row; the armor row after it would
	// satisfy the other criterion but the seed is already abandoned.
	data := catalogData(
		goldRow(9, 1, 3),
		goldRow(9, 2, 3),
		armorRow(9, 3, "scale mail", 2, ""),
		goldRow(10, 1, 1),
		armorRow(10, 2, "scale mail", 1, ""),
	)
	crits := []*criteria.Criterion{
		goldCriterion(5, criteria.LessThan),
		armorCriterion("scale"),
	}
	s := Scanner{Query: newTestQuery(t, crits, 10)}

	results, err := s.Run([]Source{stringSource{name: "a.csv", data: data}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Found() != 1 {
		t.Fatalf("expected only seed 10 to match, found %d", s.Found())
	}
	for _, m := range results {
		if m.Seed != 10 {
			t.Errorf("expected matches only from seed 10, got seed %d", m.Seed)
		}
	}
}

func TestScanOutOfBoundsRowsDoNotResetState(t *testing.T) {
	data := catalogData(
		goldRow(4, 2, 300),
		goldRow(4, 20, 999), // outside the depth bounds
		goldRow(4, 3, 300),
	)
	q, err := criteria.NewQuery(
		criteria.Bounds{SeedMin: 1, SeedMax: 4294967295, DepthMin: 1, DepthMax: 6},
		[]*criteria.Criterion{goldCriterion(500, criteria.AtLeast)}, 10,
	)
	if err != nil {
		t.Fatalf("building query: %v", err)
	}
	s := Scanner{Query: q}

	results, runErr := s.Run([]Source{stringSource{name: "a.csv", data: data}})
	if runErr != nil {
		t.Fatalf("unexpected error: %v", runErr)
	}
	if s.Found() != 1 {
		t.Fatalf("expected the seed to match across the out-of-bounds row, found %d", s.Found())
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 matches (deep row skipped), got %d", len(results))
	}
}

func TestScanStopsAtMatchTarget(t *testing.T) {
	data := catalogData(
		goldRow(1, 1, 600),
		goldRow(2, 1, 700),
		goldRow(3, 1, 800),
	)
	s := Scanner{Query: newTestQuery(t, []*criteria.Criterion{goldCriterion(500, criteria.AtLeast)}, 2)}

	_, err := s.Run([]Source{stringSource{name: "a.csv", data: data}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Found() != 2 {
		t.Fatalf("expected scan to stop at 2 seeds, found %d", s.Found())
	}
	if !s.Complete() {
		t.Errorf("expected search to report completion")
	}
}

func TestScanBadHeader(t *testing.T) {
	data := "not,a,catalog\n1,2,3\n"
	s := Scanner{Query: newTestQuery(t, []*criteria.Criterion{goldCriterion(1, criteria.AtLeast)}, 10)}

	_, err := s.Run([]Source{stringSource{name: "bad.csv", data: data}})
	if err == nil {
		t.Fatalf("expected header validation error")
	}
}

func TestScanFileErrorsPreserveCommittedResults(t *testing.T) {
	good := catalogData(goldRow(1, 1, 600))
	malformed := catalogData("1.13,not-a-seed,1,5,gold,gold pieces,,,,,,,")

	s := Scanner{Query: newTestQuery(t, []*criteria.Criterion{goldCriterion(500, criteria.AtLeast)}, 10)}
	results, err := s.Run([]Source{
		stringSource{name: "good.csv", data: good},
		stringSource{name: "bad.csv", data: malformed},
		failingSource{},
	})

	if err == nil {
		t.Fatalf("expected joined per-file errors")
	}
	if !strings.Contains(err.Error(), "bad.csv") || !strings.Contains(err.Error(), "missing.csv") {
		t.Errorf("expected both failing files named, got %q", err)
	}
	if s.Found() != 1 || len(results) != 1 {
		t.Fatalf("expected results from the good file to survive, got %d seeds %d matches", s.Found(), len(results))
	}
}

func TestScanRowMatchesAtMostOneCriterion(t *testing.T) {
	// Both criteria accept scale mail; only the first in insertion order
	// may claim the row, so the second stays unsatisfied.
	data := catalogData(armorRow(3, 2, "scale mail", 1, ""))
	crits := []*criteria.Criterion{
		armorCriterion("scale"),
		armorCriterion("mail"),
	}
	s := Scanner{Query: newTestQuery(t, crits, 10)}

	results, err := s.Run([]Source{stringSource{name: "a.csv", data: data}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Found() != 0 {
		t.Fatalf("expected no fully satisfied seed, found %d", s.Found())
	}
	if len(results) != 0 {
		t.Fatalf("expected no committed matches, got %d", len(results))
	}
}
