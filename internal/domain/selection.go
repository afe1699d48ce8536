package domain

import "github.com/m04kA/SMC-StaffService/pkg/types"

// Selection фиксированный по длине набор слотов выбора мастеров
// nil в слоте означает, что слот ещё не заполнен
// Инвариант: один мастер не может занимать два слота
type Selection []*Professional

// NewSelection создает пустой выбор указанной длины
func NewSelection(size int) Selection {
	if size < 0 {
		size = 0
	}
	return make(Selection, size)
}

// Contains проверяет, что мастер уже выбран
func (s Selection) Contains(professionalID int64) bool {
	for _, p := range s {
		if p != nil && p.ID == professionalID {
			return true
		}
	}
	return false
}

// FilledCount возвращает количество заполненных слотов
func (s Selection) FilledCount() int {
	count := 0
	for _, p := range s {
		if p != nil {
			count++
		}
	}
	return count
}

// IsComplete проверяет, что заполнены ровно все запрошенные слоты
func (s Selection) IsComplete(requested int) bool {
	return s.FilledCount() == requested
}

// RemainingSlots возвращает количество незаполненных слотов до запрошенного количества
func (s Selection) RemainingSlots(requested int) int {
	remaining := requested - s.FilledCount()
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Professionals возвращает выбранных мастеров без пустых слотов
func (s Selection) Professionals() []*Professional {
	result := make([]*Professional, 0, len(s))
	for _, p := range s {
		if p != nil {
			result = append(result, p)
		}
	}
	return result
}

// CoveredServices возвращает услуги, которые покрыты текущим выбором
func (s Selection) CoveredServices(serviceIDs []int64) types.Int64Set {
	covered := make(types.Int64Set)
	for _, p := range s {
		if p == nil {
			continue
		}
		for _, id := range serviceIDs {
			if p.Offers(id) {
				covered.Add(id)
			}
		}
	}
	return covered
}

// UncoveredServices возвращает услуги, которые текущий выбор не покрывает
func (s Selection) UncoveredServices(serviceIDs []int64) types.Int64Set {
	covered := s.CoveredServices(serviceIDs)
	uncovered := make(types.Int64Set)
	for _, id := range serviceIDs {
		if !covered.Contains(id) {
			uncovered.Add(id)
		}
	}
	return uncovered
}

// Place помещает мастера в первый пустой слот
// Если пустых слотов нет, но выбор короче запрошенной длины — добавляет слот в конец
// Возвращает новый выбор и признак успеха; уже выбранный мастер повторно не добавляется
func (s Selection) Place(p *Professional, requested int) (Selection, bool) {
	if p == nil || s.Contains(p.ID) {
		return s, false
	}

	result := s.Clone()
	for i, slot := range result {
		if slot == nil {
			result[i] = p
			return result, true
		}
	}

	if len(result) < requested {
		result = append(result, p)
		return result, true
	}

	return s, false
}

// Remove убирает мастера из выбора и дополняет выбор пустыми слотами до запрошенной длины
func (s Selection) Remove(professionalID int64, requested int) Selection {
	result := make(Selection, 0, requested)
	for _, p := range s {
		if p != nil && p.ID != professionalID {
			result = append(result, p)
		}
	}
	for len(result) < requested {
		result = append(result, nil)
	}
	return result
}

// Clone возвращает копию выбора
func (s Selection) Clone() Selection {
	result := make(Selection, len(s))
	copy(result, s)
	return result
}
