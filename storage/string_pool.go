package storage

import "unique"

// StringID is an index into a StringPool.
type StringID uint32

// NullStringID is the id of the empty string, which columns report as NULL.
const NullStringID StringID = 0

// StringPool interns strings and hands out stable ids.
//
// Ids are never renumbered for the lifetime of the pool. Id 0 is always the
// empty string.
type StringPool struct {
	strings []string
	index   map[unique.Handle[string]]StringID
}

// NewStringPool creates a pool containing only the empty string.
func NewStringPool() *StringPool {
	p := &StringPool{
		strings: make([]string, 0, 64),
		index:   make(map[unique.Handle[string]]StringID, 64),
	}
	p.strings = append(p.strings, "")
	p.index[unique.Make("")] = NullStringID
	return p
}

// Intern returns the id of s, adding it to the pool if needed.
func (p *StringPool) Intern(s string) StringID {
	h := unique.Make(s)
	if id, ok := p.index[h]; ok {
		return id
	}
	id := StringID(len(p.strings))
	p.strings = append(p.strings, s)
	p.index[h] = id
	return id
}

// Lookup returns the id of s without interning it.
func (p *StringPool) Lookup(s string) (StringID, bool) {
	id, ok := p.index[unique.Make(s)]
	return id, ok
}

// Get returns the string for id. id must have been returned by Intern.
func (p *StringPool) Get(id StringID) string {
	return p.strings[id]
}

// Len returns the number of distinct strings, including the empty string.
func (p *StringPool) Len() int {
	return len(p.strings)
}
