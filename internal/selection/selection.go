package selection

import "file-man/internal/lister"

// Set is an ordered collection of files, unique by path. Insertion order is
// preserved so bulk operations run in the order the user picked the files.
type Set struct {
	entries []lister.Entry
}

// Toggle flips membership for e. It reports true when e was added and false
// when an entry with the same path was removed instead.
func (s *Set) Toggle(e lister.Entry) bool {
	for i, cur := range s.entries {
		if cur.Path == e.Path {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return false
		}
	}
	s.entries = append(s.entries, e)
	return true
}

func (s *Set) Contains(path string) bool {
	for _, cur := range s.entries {
		if cur.Path == path {
			return true
		}
	}
	return false
}

func (s *Set) Clear() {
	s.entries = nil
}

func (s *Set) Len() int {
	return len(s.entries)
}

// Entries returns the set's backing slice in insertion order. It is valid
// until the next mutation; callers that rename an entry in place may update
// the slice element directly.
func (s *Set) Entries() []lister.Entry {
	return s.entries
}

func (s *Set) TotalSize() int64 {
	var total int64
	for _, cur := range s.entries {
		total += cur.Size
	}
	return total
}
