package domain

import "time"

// Service represents a salon service selected by the client
type Service struct {
	ID        int64
	CompanyID int64
	Name      string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ServiceIDs возвращает список идентификаторов услуг
func ServiceIDs(services []Service) []int64 {
	ids := make([]int64, len(services))
	for i, s := range services {
		ids[i] = s.ID
	}
	return ids
}
