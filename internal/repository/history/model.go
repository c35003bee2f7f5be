package history

import "time"

type StatusHistoryDB struct {
	ID        int64
	ParcelID  int64
	Status    string
	Comment   string
	ChangedAt time.Time
}
