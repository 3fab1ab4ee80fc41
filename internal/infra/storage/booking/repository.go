package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/ToyotaTanzania/booking-facilities-sub000/internal/domain"
	"github.com/ToyotaTanzania/booking-facilities-sub000/pkg/dbmetrics"
	"github.com/ToyotaTanzania/booking-facilities-sub000/pkg/psqlbuilder"
)

// uniqueViolation код ошибки PostgreSQL для нарушения уникальности
const uniqueViolation = "23505"

var bookingColumns = []string{
	"id",
	"correlation_code",
	"facility_id",
	"schedule_id",
	"slot_id",
	"booking_date",
	"user_id",
	"status",
	"facility_name",
	"requester_contact",
	"description",
	"comment",
	"approved_by",
	"approved_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateBatch создает пакет бронирований одного запроса (общий correlation_code)
// Частичный уникальный индекс на (facility_id, booking_date, slot_id) для активных
// статусов является источником истины: при гонке проигравшая вставка получает
// ErrSlotConflict, и вся транзакция вызывающей стороны откатывается
func (r *Repository) CreateBatch(ctx context.Context, bookings []*domain.Booking) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	for _, b := range bookings {
		query, args, err := psqlbuilder.Insert("bookings").
			Columns(
				"correlation_code",
				"facility_id",
				"schedule_id",
				"slot_id",
				"booking_date",
				"user_id",
				"status",
				"facility_name",
				"requester_contact",
				"description",
				"comment",
			).
			Values(
				b.CorrelationCode,
				b.FacilityID,
				b.ScheduleID,
				b.SlotID,
				b.BookingDate,
				b.UserID,
				b.Status,
				b.FacilityName,
				b.RequesterContact,
				b.Description,
				b.Comment,
			).
			Suffix("RETURNING id, created_at, updated_at").
			ToSql()

		if err != nil {
			return nil, fmt.Errorf("%w: CreateBatch - build insert query: %v", ErrBuildQuery, err)
		}

		var createdAt, updatedAt sql.NullTime
		err = executor.QueryRowContext(ctx, query, args...).Scan(&b.ID, &createdAt, &updatedAt)

		if err != nil {
			if isUniqueViolation(err) {
				return nil, fmt.Errorf("%w: slot_id=%d, date=%s",
					ErrSlotConflict, b.SlotID, b.BookingDate.Format(domain.DateFormat))
			}
			return nil, fmt.Errorf("%w: CreateBatch - execute insert: %v", ErrExecQuery, err)
		}

		b.CreatedAt = createdAt.Time
		b.UpdatedAt = updatedAt.Time
	}

	return bookings, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetByUserID получает список бронирований пользователя
// Опционально фильтрует по статусу
func (r *Repository) GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("booking_date DESC, id DESC")

	// Фильтрация по статусу, если указан
	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetByFacilityWithFilter получает бронирования объекта с гибкой фильтрацией
// Поддерживает фильтрацию по периоду, статусу и включению неактивных бронирований
func (r *Repository) GetByFacilityWithFilter(ctx context.Context, filter domain.FacilityBookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"facility_id": filter.FacilityID})

	// Фильтрация по периоду
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"booking_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"booking_date": *filter.EndDate})
	}

	// Фильтрация по статусу
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeInactive {
		// Если не указан конкретный статус и не нужны неактивные - исключаем их
		inactiveStatusStrings := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			inactiveStatusStrings[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": inactiveStatusStrings})
	}

	singleDate := filter.StartDate != nil && filter.EndDate != nil && filter.StartDate.Equal(*filter.EndDate)

	if singleDate {
		selectBuilder = selectBuilder.OrderBy("slot_id ASC, id ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("booking_date DESC, id DESC")
	}

	// Внутри транзакции блокируем строки конкретной даты (FOR UPDATE),
	// чтобы закрыть окно между проверкой доступности и вставкой
	if dbmetrics.IsInTransaction(ctx) && singleDate {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFacilityWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFacilityWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// UpdateStatus переводит бронирование в новый статус одним атомарным UPDATE
// Вместе со статусом выставляются approved_by, approved_at и комментарий (если задан)
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus, actorID int64, comment *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("approved_by", actorID).
		Set("approved_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if comment != nil {
		updateBuilder = updateBuilder.Set("comment", *comment)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: booking_id=%d", ErrSlotConflict, id)
		}
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	return requireRowsAffected(result, "UpdateStatus")
}

// Reschedule переносит бронирование на новую дату (и, опционально, слот)
// и выставляет новый статус одним атомарным UPDATE
// Используется для самостоятельного переноса (status=pending) и для
// переноса с подтверждением ответственным лицом (status=confirmed)
func (r *Repository) Reschedule(ctx context.Context, id int64, newDate time.Time, newSlotID *int64, status domain.BookingStatus, actorID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("bookings").
		Set("booking_date", newDate).
		Set("status", status).
		Set("approved_by", actorID).
		Set("approved_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if newSlotID != nil {
		updateBuilder = updateBuilder.Set("slot_id", *newSlotID)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Reschedule - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		// Перенос на занятый слот нарушает тот же частичный уникальный индекс
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: booking_id=%d, date=%s", ErrSlotConflict, id, newDate.Format(domain.DateFormat))
		}
		return fmt.Errorf("%w: Reschedule - execute update: %v", ErrExecQuery, err)
	}

	return requireRowsAffected(result, "Reschedule")
}

// ReassignUser переназначает бронирование другому пользователю
// Статус бронирования не меняется
func (r *Repository) ReassignUser(ctx context.Context, id int64, newUserID int64, description *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("bookings").
		Set("user_id", newUserID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if description != nil {
		updateBuilder = updateBuilder.Set("description", *description)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReassignUser - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: ReassignUser - execute update: %v", ErrExecQuery, err)
	}

	return requireRowsAffected(result, "ReassignUser")
}

// Delete удаляет бронирование (физическое удаление, доступно только администратору)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	return requireRowsAffected(result, "Delete")
}

// requireRowsAffected возвращает ErrBookingNotFound, если запрос не изменил ни одной строки
func requireRowsAffected(result sql.Result, op string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// isUniqueViolation проверяет, является ли ошибка нарушением уникального индекса
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolation
	}
	return false
}

// scanBooking сканирует одну строку результата в бронирование
func scanBooking(row *sql.Row) (*domain.Booking, error) {
	var b domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&b.ID,
		&b.CorrelationCode,
		&b.FacilityID,
		&b.ScheduleID,
		&b.SlotID,
		&b.BookingDate,
		&b.UserID,
		&b.Status,
		&b.FacilityName,
		&b.RequesterContact,
		&b.Description,
		&b.Comment,
		&b.ApprovedBy,
		&b.ApprovedAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time
	return &b, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var b domain.Booking
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&b.ID,
			&b.CorrelationCode,
			&b.FacilityID,
			&b.ScheduleID,
			&b.SlotID,
			&b.BookingDate,
			&b.UserID,
			&b.Status,
			&b.FacilityName,
			&b.RequesterContact,
			&b.Description,
			&b.Comment,
			&b.ApprovedBy,
			&b.ApprovedAt,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		b.CreatedAt = createdAt.Time
		b.UpdatedAt = updatedAt.Time

		bookings = append(bookings, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
