package schedule

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonScheduleService/internal/domain"
)

// snapshotVersion версия формата снимка в Redis
const snapshotVersion = 2

// snapshot снимок расписания в кэше
// Generation - поколение кэша, прочитанное до запроса в БД. Снимок действителен,
// только пока поколение в Redis не изменилось.
type snapshot struct {
	Version    int           `json:"version"`
	Generation int64         `json:"generation"`
	Entries    []cachedEntry `json:"entries"`
}

type cachedEntry struct {
	ID        uuid.UUID `json:"id"`
	IsClosed  bool      `json:"isClosed"`
	Date      string    `json:"date,omitempty"`
	DayOff    []string  `json:"dayOff,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toSnapshot(entries []domain.ScheduleEntry, generation int64) snapshot {
	s := snapshot{
		Version:    snapshotVersion,
		Generation: generation,
		Entries:    make([]cachedEntry, 0, len(entries)),
	}
	for _, e := range entries {
		s.Entries = append(s.Entries, cachedEntry{
			ID:        e.ID,
			IsClosed:  e.IsClosed,
			Date:      e.DateString(),
			DayOff:    e.DayOff,
			CreatedAt: e.CreatedAt,
			UpdatedAt: e.UpdatedAt,
		})
	}
	return s
}

func (s snapshot) toDomain() ([]domain.ScheduleEntry, error) {
	entries := make([]domain.ScheduleEntry, 0, len(s.Entries))
	for _, c := range s.Entries {
		entry := domain.ScheduleEntry{
			ID:        c.ID,
			IsClosed:  c.IsClosed,
			DayOff:    c.DayOff,
			CreatedAt: c.CreatedAt,
			UpdatedAt: c.UpdatedAt,
		}
		if c.Date != "" {
			date, err := domain.ParseDate(c.Date)
			if err != nil {
				return nil, err
			}
			entry.Date = &date
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
