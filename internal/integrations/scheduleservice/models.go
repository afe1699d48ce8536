package scheduleservice

// WorkingProfessionalsResponse модель ответа ScheduleService со списком работающих мастеров
type WorkingProfessionalsResponse struct {
	CompanyID       int64   `json:"company_id"`
	Date            string  `json:"date"` // YYYY-MM-DD
	ProfessionalIDs []int64 `json:"professional_ids"`
}

// ErrorResponse модель ошибки от ScheduleService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
