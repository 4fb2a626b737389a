package sgdi

import (
	"sort"
	"strings"
)

// DomainSet is the insert-only accumulator for scraped email domains.
// Members are unique and lowercase; the set never shrinks.
type DomainSet struct {
	members map[string]struct{}
}

func NewDomainSet() *DomainSet {
	return &DomainSet{
		members: make(map[string]struct{}),
	}
}

// Add inserts a domain, normalized to lowercase, and reports whether it was
// not already present.
func (ds *DomainSet) Add(domain string) bool {
	domain = strings.ToLower(domain)
	if _, ok := ds.members[domain]; ok {
		return false
	}
	ds.members[domain] = struct{}{}
	return true
}

// AddAll merges another set and returns the newly added domains, sorted.
func (ds *DomainSet) AddAll(other *DomainSet) []string {
	added := make([]string, 0)
	for domain := range other.members {
		if ds.Add(domain) {
			added = append(added, domain)
		}
	}
	sort.Strings(added)
	return added
}

func (ds *DomainSet) Contains(domain string) bool {
	_, ok := ds.members[strings.ToLower(domain)]
	return ok
}

func (ds *DomainSet) Len() int {
	return len(ds.members)
}

func (ds *DomainSet) Sorted() []string {
	out := make([]string, 0, len(ds.members))
	for domain := range ds.members {
		out = append(out, domain)
	}
	sort.Strings(out)
	return out
}
