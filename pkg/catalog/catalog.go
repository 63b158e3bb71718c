package catalog

import (
	"fmt"
	"sort"
	"sync"

	"github.com/henderiw/idxrange/pkg/interval"
	"k8s.io/apimachinery/pkg/labels"
)

// Catalog holds named, labeled interval sets. It is safe for concurrent use.
type Catalog interface {
	Get(name string) (Entry, error)
	Add(name string, l labels.Set, set *interval.Set) error
	Update(name string, l labels.Set, set *interval.Set) error
	Delete(name string) error

	Iterate() *Iterator

	Count() int
	Has(name string) bool

	GetAll() Entries
	GetByLabel(selector labels.Selector) Entries
	Match(selector labels.Selector, id uint64) []string
}

func New() Catalog {
	return &catalog{
		m:       new(sync.RWMutex),
		entries: map[string]Entry{},
	}
}

type catalog struct {
	m       *sync.RWMutex
	entries map[string]Entry
}

func (r *catalog) Get(name string) (Entry, error) {
	r.m.RLock()
	defer r.m.RUnlock()

	e, ok := r.entries[name]
	if !ok {
		return nil, fmt.Errorf("no match found for: %s", name)
	}
	return e, nil
}

func (r *catalog) Add(name string, l labels.Set, set *interval.Set) error {
	if err := validate(name, set); err != nil {
		return err
	}

	r.m.Lock()
	defer r.m.Unlock()

	if _, ok := r.entries[name]; ok {
		return fmt.Errorf("entry %s already exists", name)
	}
	r.entries[name] = NewEntry(name, l, set)
	return nil
}

func (r *catalog) Update(name string, l labels.Set, set *interval.Set) error {
	if err := validate(name, set); err != nil {
		return err
	}

	r.m.Lock()
	defer r.m.Unlock()

	if _, ok := r.entries[name]; !ok {
		return fmt.Errorf("entry %s not found", name)
	}
	r.entries[name] = NewEntry(name, l, set)
	return nil
}

func (r *catalog) Delete(name string) error {
	r.m.Lock()
	defer r.m.Unlock()

	if _, ok := r.entries[name]; !ok {
		return fmt.Errorf("entry %s not found", name)
	}
	delete(r.entries, name)
	return nil
}

// Iterate returns an iterator over a snapshot of the catalog, sorted by name.
func (r *catalog) Iterate() *Iterator {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.iterate()
}

func (r *catalog) iterate() *Iterator {
	keys := make([]string, 0, len(r.entries))
	entries := make(map[string]Entry, len(r.entries))
	for key, e := range r.entries {
		keys = append(keys, key)
		entries[key] = e
	}
	sort.Strings(keys)

	return &Iterator{current: -1, keys: keys, entries: entries}
}

func (r *catalog) Count() int {
	r.m.RLock()
	defer r.m.RUnlock()

	return len(r.entries)
}

func (r *catalog) Has(name string) bool {
	r.m.RLock()
	defer r.m.RUnlock()

	_, ok := r.entries[name]
	return ok
}

func (r *catalog) GetAll() Entries {
	entries := Entries{}

	iter := r.Iterate()
	for iter.Next() {
		entries = append(entries, iter.Entry())
	}
	return entries
}

func (r *catalog) GetByLabel(selector labels.Selector) Entries {
	entries := Entries{}

	iter := r.Iterate()
	for iter.Next() {
		if selector.Matches(iter.Entry().Labels()) {
			entries = append(entries, iter.Entry())
		}
	}
	return entries
}

// Match returns the names of the selected sets that contain id.
func (r *catalog) Match(selector labels.Selector, id uint64) []string {
	names := []string{}
	for _, e := range r.GetByLabel(selector) {
		if e.Set().Contains(id) {
			names = append(names, e.Name())
		}
	}
	return names
}

func validate(name string, set *interval.Set) error {
	if name == "" {
		return fmt.Errorf("entry name cannot be empty")
	}
	if set == nil {
		return fmt.Errorf("entry %s has no set", name)
	}
	return nil
}
