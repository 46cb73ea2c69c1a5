package party

import (
	"io"
	"sort"
)

// IDSlice is a sorted slice of IDs.
type IDSlice []ID

// NewIDSlice returns a sorted copy of the given partyIDs.
func NewIDSlice(partyIDs []ID) IDSlice {
	ids := IDSlice(partyIDs).Copy()
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Copy returns an identical copy of the received.
func (partyIDs IDSlice) Copy() IDSlice {
	ids := make(IDSlice, len(partyIDs))
	copy(ids, partyIDs)
	return ids
}

// Valid returns true if the IDSlice is sorted and does not contain any duplicates or empty IDs.
func (partyIDs IDSlice) Valid() bool {
	n := len(partyIDs)
	for i := 1; i < n; i++ {
		if partyIDs[i-1] >= partyIDs[i] {
			return false
		}
	}
	return n > 0 && partyIDs[0] != ""
}

// Contains returns true if partyIDs contains id.
func (partyIDs IDSlice) Contains(id ID) bool {
	i := partyIDs.search(id)
	return i >= 0
}

// Remove returns a copy of partyIDs with id removed.
func (partyIDs IDSlice) Remove(id ID) IDSlice {
	out := make(IDSlice, 0, len(partyIDs))
	for _, partyID := range partyIDs {
		if partyID != id {
			out = append(out, partyID)
		}
	}
	return out
}

// search returns the index of id in partyIDs, or -1 when absent.
// Relies on the fact that the slice is sorted.
func (partyIDs IDSlice) search(id ID) int {
	i := sort.Search(len(partyIDs), func(i int) bool { return partyIDs[i] >= id })
	if i < len(partyIDs) && partyIDs[i] == id {
		return i
	}
	return -1
}

// WriteTo implements io.WriterTo interface.
func (partyIDs IDSlice) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, id := range partyIDs {
		n, err := id.WriteTo(w)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// Domain implements hash.WriterToWithDomain, and separates this type within hash.Hash.
func (IDSlice) Domain() string {
	return "IDSlice"
}
