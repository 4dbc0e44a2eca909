package cli

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/corvusworks/seedscan/internal/criteria"
	"github.com/corvusworks/seedscan/internal/files"
	"github.com/corvusworks/seedscan/internal/scan"
	"github.com/corvusworks/seedscan/internal/ui"
)

// buildQuery compiles every category flag occurrence into criteria and
// assembles the query. Bounds errors are fatal before any flag compiles;
// compile errors across all flags are collected and reported together.
func buildQuery() (*criteria.Query, error) {
	bounds := criteria.Bounds{
		SeedMin:  seedMinFlag,
		SeedMax:  seedMaxFlag,
		DepthMin: depthMinFlag,
		DepthMax: depthMaxFlag,
	}
	if err := bounds.Validate(); err != nil {
		return nil, &codedError{Code: ErrQueryInvalid, Err: err}
	}

	compiler := criteria.Compiler{DepthMax: depthMaxFlag}

	var (
		compiled []*criteria.Criterion
		errs     []error
	)
	for _, cf := range categoryFlags {
		for _, occurrence := range cf.values {
			tokens := strings.Fields(occurrence)
			crits, err := compiler.Compile(cf.category, tokens)
			if err != nil {
				errs = append(errs, fmt.Errorf("--%s: %w", cf.name, err))
				continue
			}
			compiled = append(compiled, crits...)
		}
	}
	if len(errs) > 0 {
		return nil, &codedError{Code: ErrCriteriaInvalid, Err: errors.Join(errs...)}
	}

	q, err := criteria.NewQuery(bounds, compiled, uint32(matchesFlag))
	if err != nil {
		return nil, &codedError{Code: ErrQueryInvalid, Err: err}
	}
	return q, nil
}

// catalogSources discovers the catalog files to scan and the encoding
// actually in use.
func catalogSources() ([]scan.Source, files.Encoding, error) {
	dir := filePathFlag
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, 0, err
		}
		dir = cwd
	}

	preferred := files.UTF16
	if utf8Flag {
		preferred = files.UTF8
	}

	found, encoding, err := files.Discover(dir, preferred)
	if err != nil {
		return nil, encoding, &codedError{Code: ErrFileReadError, Err: err}
	}
	if len(found) == 0 {
		return nil, encoding, &codedError{
			Code: ErrFileNotFound,
			Err:  fmt.Errorf("no catalog .csv files found in %s", dir),
		}
	}
	if encoding != preferred {
		fmt.Fprintln(os.Stderr, ui.Warningf("no %s catalogs in %s, falling back to %s", preferred, dir, encoding))
	}

	if randomFlag {
		rand.Shuffle(len(found), func(i, j int) {
			found[i], found[j] = found[j], found[i]
		})
	}

	sources := make([]scan.Source, len(found))
	for i, f := range found {
		sources[i] = f
	}
	return sources, encoding, nil
}

func runSearch() error {
	q, err := buildQuery()
	if err != nil {
		return err
	}

	sources, encoding, err := catalogSources()
	if err != nil {
		return err
	}

	display := ui.NewDisplayContext()
	level := verbosity()
	fmt.Println(ui.Summary(q, encoding.String(), level))

	scanner := scan.Scanner{Query: q}
	if debugFlag {
		fmt.Fprintf(os.Stderr, "%s scanning %s\n", ui.SymbolInfo,
			ui.Count(len(sources), "catalog file", "catalog files"))
		scanner.Trace = func(name string) {
			fmt.Fprintf(os.Stderr, "searching file: %s\n", ui.FilePath(name))
		}
	}

	results, scanErr := scanner.Run(sources)
	if scanErr != nil {
		// Failed files are reported but already-committed seeds stand.
		fmt.Fprintln(os.Stderr, ui.Errorf("%s", scanErr))
	}

	fmt.Print(ui.Results(display, results, level))
	return nil
}
