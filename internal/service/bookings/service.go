package bookings

import (
	"context"
	"fmt"

	"github.com/rakanz/chalet-booking-service/internal/domain"
	"github.com/rakanz/chalet-booking-service/internal/service/bookings/models"
)

// Service сервис для управления бронированиями шале
type Service struct {
	store  StateStore
	logger Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(store StateStore, logger Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// DayBookings возвращает состояние бронирований на дату вместе с
// вычисленной доступностью. Функция тотальна: отсутствующая дата — пустой
// набор, всё свободно.
func (s *Service) DayBookings(ctx context.Context, date domain.DateKey) *models.DayBookings {
	booked := s.store.BookedSlots(date)
	return &models.DayBookings{
		Date:         date,
		BookedSlots:  booked,
		Availability: domain.ResolveAvailability(booked),
	}
}

// ToggleSlot переключает состояние брони одного слота на дату, соблюдая
// взаимное исключение full_day:
//   - full_day поверх ровно {full_day} — очищает дату
//   - full_day поверх чего угодно другого — заменяет набор на {full_day},
//     молча перезаписывая утренние/вечерние брони (принятое поведение,
//     зафиксировано тестами)
//   - morning/evening — сначала снимает full_day (даунгрейд до частичной
//     брони), затем переключает членство слота
//
// Пустая дата — тихий no-op: возвращается текущее состояние без изменений.
// Ценовые переопределения никогда не затрагиваются.
func (s *Service) ToggleSlot(ctx context.Context, date domain.DateKey, slot domain.SlotKind) (*models.DayBookings, error) {
	if !slot.IsValid() {
		s.logger.Warn("ToggleSlot: unknown slot %q for date=%s", slot, date)
		return nil, fmt.Errorf("%w: %q", ErrUnknownSlot, slot)
	}

	if date.IsZero() {
		s.logger.Warn("ToggleSlot: empty date, declining")
		return s.DayBookings(ctx, date), nil
	}

	current := s.store.BookedSlots(date)
	var next []domain.SlotKind

	if slot == domain.SlotFullDay {
		if len(current) == 1 && current[0] == domain.SlotFullDay {
			next = nil
		} else {
			next = []domain.SlotKind{domain.SlotFullDay}
		}
	} else {
		next = make([]domain.SlotKind, 0, len(current))
		for _, booked := range current {
			if booked == domain.SlotFullDay || booked == slot {
				continue
			}
			next = append(next, booked)
		}
		if !domain.ContainsSlot(current, slot) {
			next = append(next, slot)
		}
	}

	s.store.SetBookedSlots(date, next)

	result := s.DayBookings(ctx, date)
	s.logger.Info("ToggleSlot: date=%s slot=%s booked=%v", date, slot, result.BookedSlots)
	return result, nil
}

// ClearDate безусловно удаляет все брони на дату. Подтверждение оператора —
// забота UI-границы, не сервиса. Пустая дата — тихий no-op.
func (s *Service) ClearDate(ctx context.Context, date domain.DateKey) *models.DayBookings {
	if date.IsZero() {
		s.logger.Warn("ClearDate: empty date, declining")
		return s.DayBookings(ctx, date)
	}

	s.store.DeleteBookings(date)
	s.logger.Info("ClearDate: date=%s cleared", date)
	return s.DayBookings(ctx, date)
}
