package domain

// Default configuration values
const (
	DefaultProfessionalsRequested = 1
)

// Business validation constants
const (
	MinProfessionalsRequested = 1
	MaxProfessionalsRequested = 10
	MaxSelectedServices       = 20
	MaxNameLength             = 200
)

// Пороги эвристики подбора мастеров.
// Значения подобраны эмпирически и зафиксированы как поведенческий контракт —
// менять их без согласования с продуктом нельзя.
const (
	// MultiSelectionThreshold с какого количества запрошенных мастеров
	// классификатор переключается в мягкий режим (бережёт последний слот)
	MultiSelectionThreshold = 3

	// EstimatorServiceThreshold минимальное количество услуг для включения
	// уточнения рекомендации "по мастеру на услугу"
	EstimatorServiceThreshold = 3
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
