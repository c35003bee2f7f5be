package history

import "logistics/internal/entities"

func ToDomain(h *StatusHistoryDB) *entities.StatusHistoryEntry {
	if h == nil {
		return nil
	}
	return &entities.StatusHistoryEntry{
		ID:        h.ID,
		ParcelID:  h.ParcelID,
		Status:    entities.ParcelStatus(h.Status),
		Comment:   h.Comment,
		ChangedAt: h.ChangedAt,
	}
}

func ToDomainList(entriesDB []StatusHistoryDB) []entities.StatusHistoryEntry {
	if len(entriesDB) == 0 {
		return []entities.StatusHistoryEntry{}
	}

	result := make([]entities.StatusHistoryEntry, len(entriesDB))
	for i := range entriesDB {
		result[i] = *ToDomain(&entriesDB[i])
	}
	return result
}
