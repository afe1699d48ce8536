package professional

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-StaffService/internal/domain"
	"github.com/m04kA/SMC-StaffService/pkg/dbmetrics"
	"github.com/m04kA/SMC-StaffService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-StaffService/pkg/types"
)

// Repository репозиторий для работы с мастерами и их наборами услуг
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория мастеров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает мастера вместе с его набором услуг
// Вставка выполняется двумя запросами (professionals + professional_services),
// поэтому вызывающая сторона обязана обернуть вызов в транзакцию
func (r *Repository) Create(ctx context.Context, p *domain.Professional) (*domain.Professional, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("professionals").
		Columns("company_id", "name", "active").
		Values(p.CompanyID, p.Name, p.Active).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&p.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	if err := r.insertCapabilities(ctx, executor, p.ID, p.OfferedServiceIDs); err != nil {
		return nil, err
	}

	return p, nil
}

// Update обновляет мастера и полностью заменяет его набор услуг
// Как и Create, требует внешней транзакции
func (r *Repository) Update(ctx context.Context, p *domain.Professional) (*domain.Professional, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("professionals").
		Set("name", p.Name).
		Set("active", p.Active).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": p.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrProfessionalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	// Полная замена набора услуг: удаляем старые связи и вставляем новые
	deleteQuery, deleteArgs, err := psqlbuilder.Delete("professional_services").
		Where(squirrel.Eq{"professional_id": p.ID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return nil, fmt.Errorf("%w: Update - delete capabilities: %v", ErrExecQuery, err)
	}

	if err := r.insertCapabilities(ctx, executor, p.ID, p.OfferedServiceIDs); err != nil {
		return nil, err
	}

	return p, nil
}

// insertCapabilities вставляет связи мастер-услуга
func (r *Repository) insertCapabilities(ctx context.Context, executor DBExecutor, professionalID int64, serviceIDs types.Int64Set) error {
	if serviceIDs.IsEmpty() {
		return nil
	}

	builder := psqlbuilder.Insert("professional_services").
		Columns("professional_id", "service_id")
	for _, serviceID := range serviceIDs.ToSlice() {
		builder = builder.Values(professionalID, serviceID)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: insertCapabilities - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: insertCapabilities - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetByID получает мастера по ID вместе с набором услуг
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Professional, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"company_id",
		"name",
		"active",
		"created_at",
		"updated_at",
	).
		From("professionals").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var p domain.Professional
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&p.ID,
		&p.CompanyID,
		&p.Name,
		&p.Active,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrProfessionalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - execute select: %v", ErrExecQuery, err)
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	capabilities, err := r.loadCapabilities(ctx, executor, []int64{p.ID})
	if err != nil {
		return nil, err
	}
	p.OfferedServiceIDs = capabilities[p.ID]
	if p.OfferedServiceIDs == nil {
		p.OfferedServiceIDs = make(types.Int64Set)
	}

	return &p, nil
}

// ListByCompany получает всех мастеров компании вместе с наборами услуг
// onlyActive = true отфильтровывает деактивированных мастеров
func (r *Repository) ListByCompany(ctx context.Context, companyID int64, onlyActive bool) ([]*domain.Professional, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(
		"id",
		"company_id",
		"name",
		"active",
		"created_at",
		"updated_at",
	).
		From("professionals").
		Where(squirrel.Eq{"company_id": companyID}).
		OrderBy("id")

	if onlyActive {
		builder = builder.Where(squirrel.Eq{"active": true})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByCompany - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByCompany - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	professionals := make([]*domain.Professional, 0)
	ids := make([]int64, 0)

	for rows.Next() {
		var p domain.Professional
		var createdAt, updatedAt sql.NullTime

		if err := rows.Scan(&p.ID, &p.CompanyID, &p.Name, &p.Active, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: ListByCompany - scan row: %v", ErrScanRow, err)
		}

		p.CreatedAt = createdAt.Time
		p.UpdatedAt = updatedAt.Time
		p.OfferedServiceIDs = make(types.Int64Set)

		professionals = append(professionals, &p)
		ids = append(ids, p.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByCompany - rows error: %v", ErrScanRow, err)
	}

	if len(ids) == 0 {
		return professionals, nil
	}

	capabilities, err := r.loadCapabilities(ctx, executor, ids)
	if err != nil {
		return nil, err
	}
	for _, p := range professionals {
		if set, ok := capabilities[p.ID]; ok {
			p.OfferedServiceIDs = set
		}
	}

	return professionals, nil
}

// loadCapabilities загружает наборы услуг для списка мастеров одним запросом
func (r *Repository) loadCapabilities(ctx context.Context, executor DBExecutor, professionalIDs []int64) (map[int64]types.Int64Set, error) {
	query, args, err := psqlbuilder.Select("professional_id", "service_id").
		From("professional_services").
		Where(squirrel.Eq{"professional_id": professionalIDs}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: loadCapabilities - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: loadCapabilities - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make(map[int64]types.Int64Set, len(professionalIDs))
	for rows.Next() {
		var professionalID, serviceID int64
		if err := rows.Scan(&professionalID, &serviceID); err != nil {
			return nil, fmt.Errorf("%w: loadCapabilities - scan row: %v", ErrScanRow, err)
		}
		if result[professionalID] == nil {
			result[professionalID] = make(types.Int64Set)
		}
		result[professionalID].Add(serviceID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: loadCapabilities - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}
