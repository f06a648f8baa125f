package domain

// ChangeList is one entry of a collection's change log.
type ChangeList struct {
	ID                string `json:"id" validate:"required"`
	ChangeListVersion int    `json:"changeListVersion" validate:"gte=1"`
	IsDelete          bool   `json:"isDelete"`
}

// ChangeListVersions holds the last applied change list version of each
// synced collection. Zero means the collection was never synced.
type ChangeListVersions struct {
	TopicVersion        int `json:"topicVersion"`
	NewsResourceVersion int `json:"newsResourceVersion"`
}

// PartitionChangeList splits a change list into deleted and changed ids and
// reports the highest version seen. When an id appears more than once, the
// entry with the highest version decides which side it lands on.
func PartitionChangeList(changes []ChangeList) (deleted, changed []string, maxVersion int) {
	latest := make(map[string]ChangeList, len(changes))
	order := make([]string, 0, len(changes))
	for _, c := range changes {
		if c.ChangeListVersion > maxVersion {
			maxVersion = c.ChangeListVersion
		}
		prev, seen := latest[c.ID]
		if !seen {
			order = append(order, c.ID)
		}
		if !seen || c.ChangeListVersion >= prev.ChangeListVersion {
			latest[c.ID] = c
		}
	}
	for _, id := range order {
		if latest[id].IsDelete {
			deleted = append(deleted, id)
		} else {
			changed = append(changed, id)
		}
	}
	return deleted, changed, maxVersion
}
