package search

import "sort"

// Match is one file and the number of its lines that matched.
type Match struct {
	File  string
	Count int
}

// Tally counts matching lines per file. Files are kept in the order they
// were first seen; a file with no matching line is never present.
type Tally struct {
	order  []string
	counts map[string]int
}

func NewTally() *Tally { return &Tally{counts: map[string]int{}} }

// Add records one matching line for file.
func (t *Tally) Add(file string) {
	if t.counts == nil {
		t.counts = map[string]int{}
	}
	if _, ok := t.counts[file]; !ok {
		t.order = append(t.order, file)
	}
	t.counts[file]++
}

func (t *Tally) Len() int {
	if t == nil {
		return 0
	}
	return len(t.order)
}

func (t *Tally) Count(file string) int {
	if t == nil {
		return 0
	}
	return t.counts[file]
}

// Matches returns every entry in encounter order.
func (t *Tally) Matches() []Match {
	out := make([]Match, 0, t.Len())
	if t == nil {
		return out
	}
	for _, f := range t.order {
		out = append(out, Match{File: f, Count: t.counts[f]})
	}
	return out
}

// SelectBest returns the file with the highest count. An entry replaces the
// current best only when its count is strictly greater, so ties go to the
// file seen first.
func SelectBest(t *Tally) (string, bool) {
	best, top := "", 0
	for _, m := range t.Matches() {
		if m.Count > top {
			best, top = m.File, m.Count
		}
	}
	return best, top > 0
}

// RankedList returns all entries sorted by count, highest first. Equal
// counts stay in encounter order.
func RankedList(t *Tally) []Match {
	out := t.Matches()
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}
