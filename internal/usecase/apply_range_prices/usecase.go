package apply_range_prices

import (
	"context"
	"strings"

	"github.com/rakanz/chalet-booking-service/internal/domain"
)

// UseCase use case массового применения цен к диапазону дат по дневным
// корзинам (weekday / thursdayEvening / friday / saturday)
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

// Execute применяет корзинные цены к каждой календарной дате диапазона
// (замкнутый интервал). Для каждой даты и слота с непустой ценой корзины:
// цена, равная текущему дефолту — снимает существующее переопределение;
// отличная — устанавливает его. Пустые поля корзины не трогают существующие
// переопределения. Опустевшие даты удаляются из хранилища. Все изменения
// коммитятся одной атомарной записью.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ApplyRangePrices: range %s..%s", req.StartDate, req.EndDate)

	// 1. Валидация до любой мутации
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ApplyRangePrices: validation failed: %v", err)
		return nil, err
	}

	// 2. Итерация по календарным дням диапазона
	dates, err := domain.DatesInRange(req.StartDate, req.EndDate)
	if err != nil {
		uc.logger.Warn("ApplyRangePrices: %v", err)
		return nil, err
	}

	changes := make(map[domain.DateKey]map[domain.SlotKind]string, len(dates))
	for _, date := range dates {
		wd, ok := date.Weekday()
		if !ok {
			continue
		}

		dayPrices := uc.store.DayOverrides(date)
		for slot, bucketPrice := range req.Buckets.ForDay(wd) {
			bucketPrice = strings.TrimSpace(bucketPrice)
			if bucketPrice == "" {
				continue
			}
			if bucketPrice == domain.DefaultPrice(date, slot) {
				delete(dayPrices, slot)
			} else {
				dayPrices[slot] = bucketPrice
			}
		}
		changes[date] = dayPrices
	}

	// 3. Атомарный коммит всех дат диапазона
	uc.store.ApplyOverrideChanges(changes)

	uc.logger.Info("ApplyRangePrices: applied bucket prices to %d days (%s..%s)",
		len(dates), req.StartDate, req.EndDate)

	return &Response{
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		DaysProcessed: len(dates),
	}, nil
}
