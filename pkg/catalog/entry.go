package catalog

import (
	"fmt"

	"github.com/henderiw/idxrange/pkg/interval"
	"k8s.io/apimachinery/pkg/labels"
)

type Entry interface {
	Name() string
	Labels() labels.Set
	Set() *interval.Set
	String() string
}

type entry struct {
	name   string
	labels labels.Set
	set    *interval.Set
}

type Entries []Entry

func (r entry) Name() string       { return r.name }
func (r entry) Labels() labels.Set { return r.labels }
func (r entry) Set() *interval.Set { return r.set }
func (r entry) String() string {
	return fmt.Sprintf("name: %s, labels: %s, ranges: %s", r.name, r.labels.String(), r.set.String())
}

func NewEntry(name string, l labels.Set, set *interval.Set) Entry {
	return entry{
		name:   name,
		labels: labels.Merge(nil, l),
		set:    set,
	}
}
