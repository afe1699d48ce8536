package domain

// CoverageStatus represents the derived coverage of a selected service
type CoverageStatus string

const (
	// CoverageUncovered ни один выбранный мастер не выполняет услугу
	CoverageUncovered CoverageStatus = "uncovered"
	// CoveragePartial услуга покрыта, но выбор ещё не заполнен до конца
	CoveragePartial CoverageStatus = "partial"
	// CoverageCovered услуга покрыта и выбор полностью заполнен
	CoverageCovered CoverageStatus = "covered"
)

// CapabilityIndex индекс возможностей: какая услуга кем из мастеров выполняется
// Строится заново на каждый запрос, ничего не кэширует
type CapabilityIndex struct {
	serviceIDs []int64
	providers  map[int64][]*Professional
}

// BuildCapabilityIndex строит индекс по выбранным услугам и доступным мастерам
func BuildCapabilityIndex(services []Service, professionals []*Professional) *CapabilityIndex {
	idx := &CapabilityIndex{
		serviceIDs: ServiceIDs(services),
		providers:  make(map[int64][]*Professional, len(services)),
	}

	for _, serviceID := range idx.serviceIDs {
		for _, p := range professionals {
			if p.Offers(serviceID) {
				idx.providers[serviceID] = append(idx.providers[serviceID], p)
			}
		}
	}

	return idx
}

// Providers возвращает мастеров, выполняющих услугу
func (idx *CapabilityIndex) Providers(serviceID int64) []*Professional {
	return idx.providers[serviceID]
}

// EveryServiceHasProvider проверяет, что каждая услуга выполнима хотя бы одним мастером
func (idx *CapabilityIndex) EveryServiceHasProvider() bool {
	for _, serviceID := range idx.serviceIDs {
		if len(idx.providers[serviceID]) == 0 {
			return false
		}
	}
	return true
}

// HasDisjointPair проверяет, есть ли пара услуг без общего мастера
// Такая пара означает жёсткую нижнюю границу в два мастера
func (idx *CapabilityIndex) HasDisjointPair() bool {
	for i := 0; i < len(idx.serviceIDs); i++ {
		for j := i + 1; j < len(idx.serviceIDs); j++ {
			if !idx.shareProvider(idx.serviceIDs[i], idx.serviceIDs[j]) {
				return true
			}
		}
	}
	return false
}

// shareProvider проверяет, что две услуги выполнимы одним и тем же мастером
func (idx *CapabilityIndex) shareProvider(serviceA, serviceB int64) bool {
	for _, p := range idx.providers[serviceA] {
		if p.Offers(serviceB) {
			return true
		}
	}
	return false
}

// ExclusiveProviders возвращает мастеров, являющихся единственными исполнителями
// какой-либо из услуг, в порядке следования услуг и без дублей
func (idx *CapabilityIndex) ExclusiveProviders() []*Professional {
	result := make([]*Professional, 0)
	seen := make(map[int64]struct{})

	for _, serviceID := range idx.serviceIDs {
		providers := idx.providers[serviceID]
		if len(providers) != 1 {
			continue
		}
		p := providers[0]
		if _, ok := seen[p.ID]; ok {
			continue
		}
		seen[p.ID] = struct{}{}
		result = append(result, p)
	}

	return result
}

// CoverageFor вычисляет статус покрытия каждой выбранной услуги
// covered требует и покрытия услуги, и полностью заполненного выбора
func CoverageFor(services []Service, selection Selection, requested int) map[int64]CoverageStatus {
	covered := selection.CoveredServices(ServiceIDs(services))
	complete := selection.IsComplete(requested)

	result := make(map[int64]CoverageStatus, len(services))
	for _, s := range services {
		switch {
		case !covered.Contains(s.ID):
			result[s.ID] = CoverageUncovered
		case complete:
			result[s.ID] = CoverageCovered
		default:
			result[s.ID] = CoveragePartial
		}
	}
	return result
}

// IsValidSelection проверяет, что выбор завершен: каждая услуга покрыта
// и заполнено ровно запрошенное количество слотов
func IsValidSelection(services []Service, selection Selection, requested int) bool {
	if !selection.IsComplete(requested) {
		return false
	}
	for _, status := range CoverageFor(services, selection, requested) {
		if status != CoverageCovered {
			return false
		}
	}
	return true
}
