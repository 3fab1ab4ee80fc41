package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/ToyotaTanzania/booking-facilities-sub000/internal/domain"
	scheduleRepo "github.com/ToyotaTanzania/booking-facilities-sub000/internal/infra/storage/schedule"
)

// Service сервис каталога слотов расписаний
type Service struct {
	repo      ScheduleRepository
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(repo ScheduleRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
		logger:    logger,
	}
}

// ListSlots возвращает слоты расписания в хронологическом порядке
func (s *Service) ListSlots(ctx context.Context, scheduleID int64) ([]*domain.Slot, error) {
	if _, err := s.repo.GetSchedule(ctx, scheduleID); err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			s.logger.Warn("ListSlots: schedule id=%d not found", scheduleID)
			return nil, ErrScheduleNotFound
		}
		s.logger.Error("ListSlots: repository error for schedule id=%d: %v", scheduleID, err)
		return nil, fmt.Errorf("%w: ListSlots - repository error: %v", ErrInternal, err)
	}

	slots, err := s.repo.ListSlots(ctx, scheduleID)
	if err != nil {
		s.logger.Error("ListSlots: repository error for schedule id=%d: %v", scheduleID, err)
		return nil, fmt.Errorf("%w: ListSlots - repository error: %v", ErrInternal, err)
	}

	return slots, nil
}

// ReplaceSlots полностью заменяет набор слотов расписания
// Замена атомарна: сначала валидация всего набора, затем архивация
// старых слотов и вставка новых в одной транзакции. Архивация вместо
// удаления сохраняет историю бронирований, ссылающуюся на старые слоты
// в одной транзакции. При любой ошибке старый каталог остается нетронутым
func (s *Service) ReplaceSlots(ctx context.Context, scheduleID int64, slots []domain.SlotInput) ([]*domain.Slot, error) {
	s.logger.Info("ReplaceSlots: replacing %d slots for schedule id=%d", len(slots), scheduleID)

	// Валидация до любой записи
	if err := domain.ValidateSlots(slots); err != nil {
		s.logger.Warn("ReplaceSlots: validation failed for schedule id=%d: %v", scheduleID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidSlots, err)
	}

	var created []*domain.Slot

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		result, err := s.repo.ReplaceSlots(txCtx, scheduleID, slots)
		if err != nil {
			return err
		}
		created = result
		return nil
	})

	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			s.logger.Warn("ReplaceSlots: schedule id=%d not found", scheduleID)
			return nil, ErrScheduleNotFound
		}
		s.logger.Error("ReplaceSlots: transaction failed for schedule id=%d: %v", scheduleID, err)
		return nil, fmt.Errorf("%w: ReplaceSlots - transaction failed: %v", ErrInternal, err)
	}

	s.logger.Info("ReplaceSlots: schedule id=%d now has %d slots", scheduleID, len(created))
	return created, nil
}
