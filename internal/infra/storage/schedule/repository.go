package schedule

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/ToyotaTanzania/booking-facilities-sub000/internal/domain"
	"github.com/ToyotaTanzania/booking-facilities-sub000/pkg/dbmetrics"
	"github.com/ToyotaTanzania/booking-facilities-sub000/pkg/psqlbuilder"
)

// Repository репозиторий для работы с расписаниями и их слотами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetSchedule получает расписание по ID
func (r *Repository) GetSchedule(ctx context.Context, id int64) (*domain.Schedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name").
		From("schedules").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetSchedule - build select query: %v", ErrBuildQuery, err)
	}

	var sched domain.Schedule
	err = executor.QueryRowContext(ctx, query, args...).Scan(&sched.ID, &sched.Name)

	if err == sql.ErrNoRows {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetSchedule - scan schedule: %v", ErrScanRow, err)
	}

	return &sched, nil
}

// ListSlots получает живые слоты расписания в хронологическом порядке
// Архивные слоты (вытесненные заменой каталога) не возвращаются
func (r *Repository) ListSlots(ctx context.Context, scheduleID int64) ([]*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"schedule_id",
		"start_time",
		"end_time",
		"size",
	).
		From("slots").
		Where(squirrel.Eq{"schedule_id": scheduleID, "archived": false}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListSlots - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListSlots - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]*domain.Slot, 0)
	for rows.Next() {
		var slot domain.Slot
		if err := rows.Scan(
			&slot.ID,
			&slot.ScheduleID,
			&slot.StartTime,
			&slot.EndTime,
			&slot.Size,
		); err != nil {
			return nil, fmt.Errorf("%w: ListSlots - scan slot: %v", ErrScanRow, err)
		}
		slots = append(slots, &slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListSlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// GetSlot получает слот по ID, включая архивные
// Архивные слоты нужны для чтения времени по историческим бронированиям
func (r *Repository) GetSlot(ctx context.Context, slotID int64) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"schedule_id",
		"start_time",
		"end_time",
		"size",
		"archived",
	).
		From("slots").
		Where(squirrel.Eq{"id": slotID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetSlot - build select query: %v", ErrBuildQuery, err)
	}

	var slot domain.Slot
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&slot.ID,
		&slot.ScheduleID,
		&slot.StartTime,
		&slot.EndTime,
		&slot.Size,
		&slot.Archived,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetSlot - scan slot: %v", ErrScanRow, err)
	}

	return &slot, nil
}

// ReplaceSlots полностью заменяет живой набор слотов расписания
// Старые слоты архивируются, а не удаляются: на них ссылается история
// бронирований (FK bookings.slot_id), поэтому замена работает и для
// расписаний с накопленной историей. Вызывающая сторона обязана обернуть
// вызов в транзакцию и провалидировать входной набор заранее,
// чтобы каталог не остался полупустым
func (r *Repository) ReplaceSlots(ctx context.Context, scheduleID int64, slots []domain.SlotInput) ([]*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	// Убеждаемся, что расписание существует, прежде чем трогать его слоты
	if _, err := r.GetSchedule(ctx, scheduleID); err != nil {
		return nil, err
	}

	archiveQuery, archiveArgs, err := psqlbuilder.Update("slots").
		Set("archived", true).
		Where(squirrel.Eq{"schedule_id": scheduleID, "archived": false}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ReplaceSlots - build archive query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, archiveQuery, archiveArgs...); err != nil {
		return nil, fmt.Errorf("%w: ReplaceSlots - execute archive: %v", ErrExecQuery, err)
	}

	created := make([]*domain.Slot, 0, len(slots))
	for _, input := range slots {
		insertQuery, insertArgs, err := psqlbuilder.Insert("slots").
			Columns("schedule_id", "start_time", "end_time", "size").
			Values(scheduleID, input.StartTime, input.EndTime, input.Size).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("%w: ReplaceSlots - build insert query: %v", ErrBuildQuery, err)
		}

		slot := &domain.Slot{
			ScheduleID: scheduleID,
			StartTime:  input.StartTime,
			EndTime:    input.EndTime,
			Size:       input.Size,
		}

		if err := executor.QueryRowContext(ctx, insertQuery, insertArgs...).Scan(&slot.ID); err != nil {
			return nil, fmt.Errorf("%w: ReplaceSlots - execute insert: %v", ErrExecQuery, err)
		}

		created = append(created, slot)
	}

	return created, nil
}
