package domain

// ProfessionalState represents the derived selection state of a professional
type ProfessionalState string

const (
	// StateSelected мастер уже находится в выборе
	StateSelected ProfessionalState = "selected"
	// StateOptimal выбор мастера улучшит покрытие услуг
	StateOptimal ProfessionalState = "optimal"
	// StateAvailable мастера можно выбрать, но покрытие он не улучшит
	StateAvailable ProfessionalState = "available"
	// StateRedundant выбор мастера потратил бы последний слот впустую
	StateRedundant ProfessionalState = "redundant"
	// StateDisabled мастер не выполняет ни одну из выбранных услуг
	StateDisabled ProfessionalState = "disabled"
)

// EstimateOptimalCount рекомендует количество мастеров для покрытия выбранных услуг.
//
// Это эвристика, а не решение задачи минимального покрытия: правила применяются
// по порядку и дают ответ за O(услуги²), жертвуя оптимальностью ради отзывчивости.
func EstimateOptimalCount(services []Service, professionals []*Professional) int {
	// 1. Пустой запрос или пустой пул — рекомендуем одного
	if len(services) == 0 || len(professionals) == 0 {
		return 1
	}

	// 2. Одна услуга — всегда один мастер
	if len(services) == 1 {
		return 1
	}

	serviceIDs := ServiceIDs(services)

	// 3. Если кто-то один умеет всё — достаточно одного
	for _, p := range professionals {
		if p.OffersAll(serviceIDs) {
			return 1
		}
	}

	idx := BuildCapabilityIndex(services, professionals)

	// 4. Пара услуг без общего мастера — жёсткая нижняя граница в два мастера
	lowerBound := 1
	if idx.HasDisjointPair() {
		lowerBound = 2
	}

	// 5. Уточнение: при трёх и более услугах, каждая из которых выполнима,
	// и достаточно большом пуле рекомендуем по мастеру на услугу
	recommended := minInt(2, len(professionals))
	if len(services) >= EstimatorServiceThreshold &&
		idx.EveryServiceHasProvider() &&
		minInt(len(services), len(professionals)) >= EstimatorServiceThreshold {
		recommended = minInt(len(services), len(professionals))
	}

	// 6. Рекомендация не может опускаться ниже жёсткой границы
	if recommended < lowerBound {
		recommended = lowerBound
	}

	return recommended
}

// AutoSelect предзаполняет выбор мастерами-единственными исполнителями.
// Рабочее количество слотов — максимум из числа эксклюзивных мастеров и рекомендации;
// эксклюзивные мастера ставятся в начало, остаток дополняется пустыми слотами.
func AutoSelect(services []Service, professionals []*Professional, estimated int) (int, Selection) {
	idx := BuildCapabilityIndex(services, professionals)
	exclusives := idx.ExclusiveProviders()

	count := estimated
	if len(exclusives) > count {
		count = len(exclusives)
	}

	selection := NewSelection(count)
	for i, p := range exclusives {
		selection[i] = p
	}

	return count, selection
}

// Classify определяет состояние мастера-кандидата относительно текущего выбора.
// Чистая функция: состояние каждый раз выводится заново из выбранных услуг,
// текущего выбора и запрошенного количества мастеров.
func Classify(candidate *Professional, services []Service, selection Selection, requested int) ProfessionalState {
	if selection.Contains(candidate.ID) {
		return StateSelected
	}

	serviceIDs := ServiceIDs(services)
	offered := candidate.OfferedOf(serviceIDs)
	if offered.IsEmpty() {
		return StateDisabled
	}

	covered := selection.CoveredServices(serviceIDs)
	uncovered := selection.UncoveredServices(serviceIDs)

	if requested >= MultiSelectionThreshold {
		// Фаза 1: пока ничего не покрыто или никто не выбран,
		// любой мастер хотя бы с одной из услуг оптимален
		if selection.FilledCount() == 0 || covered.IsEmpty() {
			return StateOptimal
		}

		// Фаза 2: кандидат закрывает хотя бы одну непокрытую услугу
		if offered.Intersects(uncovered) {
			return StateOptimal
		}

		// Всё уже покрыто — оставшиеся слоты можно заполнять кем угодно из умеющих
		if uncovered.IsEmpty() {
			return StateAvailable
		}

		// Кандидат умеет только уже покрытое: пока остаётся больше одного
		// свободного слота, он ещё пригодится; последний слот тратить нельзя
		if selection.RemainingSlots(requested) > 1 {
			return StateAvailable
		}
		return StateRedundant
	}

	// Режим одного-двух мастеров: прямое разбиение на оптимальных и избыточных.
	// Когда всё покрыто, мастер остаётся доступным, только пока есть свободный слот
	if offered.Intersects(uncovered) {
		return StateOptimal
	}
	if uncovered.IsEmpty() && selection.RemainingSlots(requested) > 0 {
		return StateAvailable
	}
	return StateRedundant
}

// ClassifyAll классифицирует весь пул мастеров за один проход
func ClassifyAll(professionals []*Professional, services []Service, selection Selection, requested int) map[int64]ProfessionalState {
	result := make(map[int64]ProfessionalState, len(professionals))
	for _, p := range professionals {
		result[p.ID] = Classify(p, services, selection, requested)
	}
	return result
}

// Alternatives возвращает мастеров, которых стоит предложить вместо избыточного кандидата:
// не выбранных, отличных от кандидата и закрывающих хотя бы одну непокрытую услугу
func Alternatives(candidate *Professional, professionals []*Professional, services []Service, selection Selection) []*Professional {
	uncovered := selection.UncoveredServices(ServiceIDs(services))

	result := make([]*Professional, 0)
	for _, p := range professionals {
		if p.ID == candidate.ID || selection.Contains(p.ID) {
			continue
		}
		if p.OfferedServiceIDs != nil && p.OfferedServiceIDs.Intersects(uncovered) {
			result = append(result, p)
		}
	}
	return result
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
