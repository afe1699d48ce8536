package plan_assignment

import (
	"time"

	"github.com/m04kA/SMC-StaffService/internal/domain"
)

// Request модель запроса на построение плана выбора мастеров
type Request struct {
	UserID         int64     // ID пользователя (для логирования)
	CompanyID      int64     // ID компании
	ServiceIDs     []int64   // Выбранные клиентом услуги
	Date           time.Time // Дата записи (определяет пул работающих мастеров)
	RequestedCount *int      // Явно запрошенное количество мастеров (опционально)
}

// ClassifiedProfessional мастер из пула вместе с его состоянием выбора
type ClassifiedProfessional struct {
	Professional *domain.Professional
	State        domain.ProfessionalState
}

// Response модель ответа с планом выбора мастеров
type Response struct {
	CompanyID              int64
	Date                   time.Time
	RecommendedCount       int                             // Рекомендация движка
	ProfessionalsRequested int                             // Рабочее количество слотов (с учетом эксклюзивных мастеров)
	Selection              domain.Selection                // Предзаполненный выбор
	Professionals          []ClassifiedProfessional        // Весь пул с состояниями
	Coverage               map[int64]domain.CoverageStatus // Статус покрытия по каждой услуге
	Valid                  bool                            // Готов ли выбор к продолжению записи
	ScheduleDegraded       bool                            // ScheduleService был недоступен, пул не фильтровался по дате
}
