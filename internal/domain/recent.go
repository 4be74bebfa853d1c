package domain

// RecentListCapacity bounds the recently-viewed list carried in the
// client-held token.
const RecentListCapacity = 3

type RecentEntry struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// RecentList is a move-to-front list of the characters a browser visited
// most recently, newest first.
type RecentList []RecentEntry

// Touch returns the list after visiting entry. An entry already at the
// front leaves the list unchanged; an entry elsewhere moves to the front
// with the relative order of the rest preserved; a new entry pushes the
// oldest one out once the list is at capacity.
func (l RecentList) Touch(entry RecentEntry) RecentList {
	if len(l) > 0 && l[0].ID == entry.ID {
		return l
	}

	next := make(RecentList, 0, RecentListCapacity)
	next = append(next, entry)
	for _, e := range l {
		if e.ID == entry.ID {
			continue
		}
		if len(next) == RecentListCapacity {
			break
		}
		next = append(next, e)
	}
	return next
}
