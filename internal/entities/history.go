package entities

import "time"

type StatusHistoryEntry struct {
	ID        int64
	ParcelID  int64
	Status    ParcelStatus
	Comment   string
	ChangedAt time.Time
}
