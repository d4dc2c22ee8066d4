package domain

import "github.com/google/uuid"

// IsDescendant reports whether startID sits somewhere below candidateAncestorID
// in the group tree. It walks startID's parent chain upwards; a group is never
// its own descendant. A parent reference pointing at a group missing from the
// slice terminates the walk as "not found". Acyclicity is enforced at write
// time (see LegalParents), so the walk always terminates on well-formed data.
func IsDescendant(groups []Group, candidateAncestorID, startID uuid.UUID) bool {
	parentID := findParent(groups, startID)
	for parentID != nil {
		if *parentID == candidateAncestorID {
			return true
		}

		parentID = findParent(groups, *parentID)
	}

	return false
}

func findParent(groups []Group, id uuid.UUID) *uuid.UUID {
	for _, g := range groups {
		if g.ID == id {
			return g.ParentID
		}
	}

	return nil
}

// SubtreeIDs returns rootID plus the IDs of all its descendants. Used to
// filter students by "this group and everything under it".
func SubtreeIDs(groups []Group, rootID uuid.UUID) []uuid.UUID {
	ids := []uuid.UUID{rootID}
	for _, g := range groups {
		if g.ID != rootID && IsDescendant(groups, rootID, g.ID) {
			ids = append(ids, g.ID)
		}
	}

	return ids
}

// LegalParents returns the groups that groupID may be reparented onto without
// creating a cycle: everything except itself and its own descendants.
func LegalParents(groups []Group, groupID uuid.UUID) []Group {
	var legal []Group
	for _, g := range groups {
		if g.ID == groupID || IsDescendant(groups, groupID, g.ID) {
			continue
		}
		legal = append(legal, g)
	}

	return legal
}
