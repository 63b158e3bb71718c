package inventory

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/henderiw/idxrange/pkg/interval"
)

// Inventory is a parsed inventory document: a block of fresh ID ranges, a
// blank line, then the available IDs to check.
type Inventory struct {
	Fresh *interval.Set
	IDs   []uint64
}

// Load reads the inventory document at path.
func Load(path string) (*Inventory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	inv, err := Parse(f)
	if err != nil {
		return inv, fmt.Errorf("inventory %s: %w", path, err)
	}
	return inv, nil
}

// Parse reads an inventory document from r. Malformed lines are reported as
// one joined error; the inventory built from the remaining lines is returned
// alongside it.
func Parse(r io.Reader) (*Inventory, error) {
	var (
		bldr     interval.Builder
		ids      []uint64
		errs     error
		inRanges = true
		started  bool
		lineNr   int
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNr++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			// blank lines before the first range are padding, the first
			// one afterwards ends the range block
			if started && inRanges {
				inRanges = false
			}
			continue
		}
		started = true

		if inRanges {
			rng, err := interval.ParseRange(line)
			if err != nil {
				errs = errors.Join(errs, fmt.Errorf("line %d: %w", lineNr, err))
				continue
			}
			bldr.AddRange(rng)
			continue
		}

		id, err := strconv.ParseUint(line, 10, 64)
		if err != nil {
			errs = errors.Join(errs, fmt.Errorf("line %d: invalid id %q: %w", lineNr, line, err))
			continue
		}
		ids = append(ids, id)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	fresh, err := bldr.Set()
	errs = errors.Join(errs, err)

	return &Inventory{
		Fresh: fresh,
		IDs:   ids,
	}, errs
}

// CountFresh returns how many of the listed IDs fall in a fresh range.
func (r *Inventory) CountFresh() int {
	count := 0
	for _, id := range r.IDs {
		if r.Fresh.Contains(id) {
			count++
		}
	}
	return count
}

// TotalFresh returns how many distinct IDs the fresh ranges cover.
func (r *Inventory) TotalFresh() uint64 {
	return r.Fresh.Size()
}
