package servicecatalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-StaffService/internal/domain"
	"github.com/m04kA/SMC-StaffService/pkg/dbmetrics"
	"github.com/m04kA/SMC-StaffService/pkg/psqlbuilder"
)

// DBExecutor интерфейс выполнения запросов из dbmetrics
type DBExecutor = dbmetrics.DBExecutor

// Repository read-модель каталога услуг компании
// Каталогом владеет SellerService, здесь хранится его реплика для валидации запросов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога услуг
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByIDs получает услуги компании по списку идентификаторов
// Отсутствующие в каталоге услуги просто не попадают в результат -
// проверку полноты делает вызывающая сторона
func (r *Repository) GetByIDs(ctx context.Context, companyID int64, serviceIDs []int64) ([]domain.Service, error) {
	if len(serviceIDs) == 0 {
		return []domain.Service{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"company_id",
		"name",
		"active",
		"created_at",
		"updated_at",
	).
		From("services").
		Where(squirrel.Eq{"company_id": companyID, "id": serviceIDs}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]domain.Service, 0, len(serviceIDs))
	for rows.Next() {
		var s domain.Service
		var createdAt, updatedAt sql.NullTime

		if err := rows.Scan(&s.ID, &s.CompanyID, &s.Name, &s.Active, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: GetByIDs - scan row: %v", ErrScanRow, err)
		}

		s.CreatedAt = createdAt.Time
		s.UpdatedAt = updatedAt.Time
		services = append(services, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}

// ExistsByCompany проверяет, что у компании есть хотя бы одна услуга в каталоге
func (r *Repository) ExistsByCompany(ctx context.Context, companyID int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("services").
		Where(squirrel.Eq{"company_id": companyID}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: ExistsByCompany - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: ExistsByCompany - execute select: %v", ErrExecQuery, err)
	}

	return true, nil
}
