package types

import "sort"

// Int64Set множество идентификаторов
// Используется как value type для набора услуг мастера
type Int64Set map[int64]struct{}

// NewInt64Set создает множество из списка идентификаторов
func NewInt64Set(ids ...int64) Int64Set {
	set := make(Int64Set, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// Contains проверяет наличие идентификатора в множестве
func (s Int64Set) Contains(id int64) bool {
	_, ok := s[id]
	return ok
}

// Add добавляет идентификатор в множество
func (s Int64Set) Add(id int64) {
	s[id] = struct{}{}
}

// Remove удаляет идентификатор из множества
func (s Int64Set) Remove(id int64) {
	delete(s, id)
}

// Len возвращает размер множества
func (s Int64Set) Len() int {
	return len(s)
}

// IsEmpty проверяет, что множество пустое
func (s Int64Set) IsEmpty() bool {
	return len(s) == 0
}

// ContainsAll проверяет, что множество содержит все перечисленные идентификаторы
func (s Int64Set) ContainsAll(ids []int64) bool {
	for _, id := range ids {
		if !s.Contains(id) {
			return false
		}
	}
	return true
}

// ContainsAny проверяет, что множество содержит хотя бы один из перечисленных идентификаторов
func (s Int64Set) ContainsAny(ids []int64) bool {
	for _, id := range ids {
		if s.Contains(id) {
			return true
		}
	}
	return false
}

// Intersect возвращает пересечение с другим множеством
func (s Int64Set) Intersect(other Int64Set) Int64Set {
	result := make(Int64Set)
	for id := range s {
		if other.Contains(id) {
			result.Add(id)
		}
	}
	return result
}

// Intersects проверяет, что пересечение с другим множеством непустое
func (s Int64Set) Intersects(other Int64Set) bool {
	for id := range s {
		if other.Contains(id) {
			return true
		}
	}
	return false
}

// ToSlice возвращает отсортированный список идентификаторов
// Сортировка нужна для детерминированного порядка в ответах и логах
func (s Int64Set) ToSlice() []int64 {
	ids := make([]int64, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Clone возвращает копию множества
func (s Int64Set) Clone() Int64Set {
	result := make(Int64Set, len(s))
	for id := range s {
		result.Add(id)
	}
	return result
}
