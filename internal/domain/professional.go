package domain

import (
	"time"

	"github.com/m04kA/SMC-StaffService/pkg/types"
)

// Professional represents a salon professional (master) with a capability set
type Professional struct {
	ID                int64
	CompanyID         int64
	Name              string
	Active            bool
	OfferedServiceIDs types.Int64Set
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Offers returns true if the professional can perform the service
func (p *Professional) Offers(serviceID int64) bool {
	if p.OfferedServiceIDs == nil {
		return false
	}
	return p.OfferedServiceIDs.Contains(serviceID)
}

// OffersAny returns true if the professional can perform at least one of the services
func (p *Professional) OffersAny(serviceIDs []int64) bool {
	if p.OfferedServiceIDs == nil {
		return false
	}
	return p.OfferedServiceIDs.ContainsAny(serviceIDs)
}

// OffersAll returns true if the professional can perform every one of the services
func (p *Professional) OffersAll(serviceIDs []int64) bool {
	if p.OfferedServiceIDs == nil {
		return false
	}
	return p.OfferedServiceIDs.ContainsAll(serviceIDs)
}

// OfferedOf возвращает пересечение услуг мастера с выбранными услугами
// Мастер без набора услуг (некорректные данные) дает пустое множество
func (p *Professional) OfferedOf(serviceIDs []int64) types.Int64Set {
	result := make(types.Int64Set)
	if p.OfferedServiceIDs == nil {
		return result
	}
	for _, id := range serviceIDs {
		if p.OfferedServiceIDs.Contains(id) {
			result.Add(id)
		}
	}
	return result
}
