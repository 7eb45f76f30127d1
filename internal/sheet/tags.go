package sheet

// TagSet is a set of labels that remembers first-insertion order, so a
// document written back unchanged keeps its tag order.
type TagSet struct {
	items []string
}

// NewTagSet returns a set holding tags with duplicates dropped
func NewTagSet(tags ...string) TagSet {
	var ts TagSet
	ts.Union(tags...)
	return ts
}

// Union adds tags to the set and returns how many were not already present
func (ts *TagSet) Union(tags ...string) int {
	added := 0
	for _, tag := range tags {
		if ts.Has(tag) {
			continue
		}
		ts.items = append(ts.items, tag)
		added++
	}
	return added
}

// Has reports whether tag is in the set
func (ts TagSet) Has(tag string) bool {
	for _, t := range ts.items {
		if t == tag {
			return true
		}
	}
	return false
}

// Len returns the number of tags
func (ts TagSet) Len() int {
	return len(ts.items)
}

// Values returns the tags in insertion order
func (ts TagSet) Values() []string {
	return append([]string(nil), ts.items...)
}

// Clone returns an independent copy. An empty set read from a document
// stays distinct from one that was never set.
func (ts TagSet) Clone() TagSet {
	if ts.items == nil {
		return TagSet{}
	}
	return TagSet{items: append([]string{}, ts.items...)}
}
