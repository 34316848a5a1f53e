package prices

import (
	"context"
	"strings"

	"github.com/rakanz/chalet-booking-service/internal/domain"
	"github.com/rakanz/chalet-booking-service/internal/service/prices/models"
)

// Service сервис для работы с ценами слотов (дефолтные ставки и
// переопределения на дату)
type Service struct {
	store  StateStore
	logger Logger
}

// NewService создает новый экземпляр сервиса цен
func NewService(store StateStore, logger Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// EffectivePrice разрешает отображаемую цену слота на дату: пустая дата —
// статическая заглушка, иначе переопределение, иначе дефолт из таблицы.
// Это единственная функция, через которую внешний слой получает цены.
func (s *Service) EffectivePrice(date domain.DateKey, slot domain.SlotKind) string {
	if date.IsZero() {
		return domain.FallbackPrice(slot)
	}
	if price, ok := s.store.Override(date, slot); ok {
		return price
	}
	return domain.DefaultPrice(date, slot)
}

// DayPrices возвращает эффективные цены всех слотов на дату.
func (s *Service) DayPrices(ctx context.Context, date domain.DateKey) *models.DayPrices {
	result := &models.DayPrices{
		Date:  date,
		Slots: make([]models.SlotPrice, 0, len(domain.AllSlots)),
	}

	for _, slot := range domain.AllSlots {
		_, overridden := s.store.Override(date, slot)
		result.Slots = append(result.Slots, models.SlotPrice{
			Slot:       slot,
			Price:      s.EffectivePrice(date, slot),
			Overridden: overridden,
		})
	}
	return result
}

// SaveDayPrices сохраняет предложенные цены на одну дату. Политика
// "diff против дефолта": цена записывается как переопределение только если
// она непустая после обрезки пробелов И отличается от текущего вычисленного
// дефолта; иначе слот исключается. Пустой результат удаляет дату из
// хранилища целиком. Побочный эффект политики: пересохранение даты после
// смены таблицы дефолтов молча убирает переопределения, совпавшие с новым
// дефолтом — принятое поведение, зафиксировано тестами.
//
// Пустая дата — тихий no-op.
func (s *Service) SaveDayPrices(ctx context.Context, date domain.DateKey, proposed map[domain.SlotKind]string) *models.DayPrices {
	if date.IsZero() {
		s.logger.Warn("SaveDayPrices: empty date, declining")
		return s.DayPrices(ctx, date)
	}

	toStore := make(map[domain.SlotKind]string, len(proposed))
	for _, slot := range domain.AllSlots {
		price := strings.TrimSpace(proposed[slot])
		if price == "" || price == domain.DefaultPrice(date, slot) {
			continue
		}
		toStore[slot] = price
	}

	s.store.ReplaceDayOverrides(date, toStore)
	s.logger.Info("SaveDayPrices: date=%s overrides=%d", date, len(toStore))
	return s.DayPrices(ctx, date)
}

// SlotCatalog возвращает статичный каталог слотов: окно времени и
// заглушечная цена для состояния "дата не выбрана".
func (s *Service) SlotCatalog(ctx context.Context) []models.CatalogSlot {
	catalog := make([]models.CatalogSlot, 0, len(domain.AllSlots))
	for _, slot := range domain.AllSlots {
		catalog = append(catalog, models.CatalogSlot{
			Slot:          slot,
			SessionTime:   domain.SessionTime(slot),
			FallbackPrice: domain.FallbackPrice(slot),
		})
	}
	return catalog
}
