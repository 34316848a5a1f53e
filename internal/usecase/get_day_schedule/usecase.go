package get_day_schedule

import (
	"context"

	"github.com/rakanz/chalet-booking-service/internal/domain"
)

// UseCase use case получения расписания дня: доступность и эффективная цена
// каждого слота. Один и тот же результат обслуживает и гостевой просмотр, и
// панель владельца.
type UseCase struct {
	store  StateStore
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(store StateStore, logger Logger) *UseCase {
	return &UseCase{
		store:  store,
		logger: logger,
	}
}

// Execute строит расписание на дату
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация даты
	if req.Date.IsZero() {
		return nil, ErrMissingDate
	}
	if _, err := req.Date.Time(); err != nil {
		uc.logger.Warn("GetDaySchedule: %v", err)
		return nil, ErrInvalidDate
	}

	// 2. Доступность из забронированных слотов даты
	booked := uc.store.BookedSlots(req.Date)
	availability := domain.ResolveAvailability(booked)

	// 3. Эффективная цена каждого слота: переопределение, иначе дефолт
	slots := make([]SlotView, 0, len(domain.AllSlots))
	for _, slot := range domain.AllSlots {
		price, overridden := uc.store.Override(req.Date, slot)
		if !overridden {
			price = domain.DefaultPrice(req.Date, slot)
		}
		slots = append(slots, SlotView{
			Slot:        slot,
			SessionTime: domain.SessionTime(slot),
			Available:   availability.For(slot),
			Price:       price,
			Overridden:  overridden,
		})
	}

	uc.logger.Info("GetDaySchedule: date=%s booked=%v", req.Date, booked)
	return &Response{
		Date:  req.Date,
		Slots: slots,
	}, nil
}
