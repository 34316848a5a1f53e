package state

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rakanz/chalet-booking-service/internal/domain"
)

// LoadSeed заполняет хранилище из JSON-файла конфигурации. Файл имеет ту же
// форму, что и экспортируемый документ, поэтому оператор может вставить
// экспорт обратно в seed. Отсутствующий файл — не ошибка: состояние
// начинается пустым.
func (s *Store) LoadSeed(path string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSeedRead, err)
	}

	var cfg domain.AppConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("%w: %v", ErrSeedDecode, err)
	}

	// Инварианты состояния применяются при загрузке: наборы слотов
	// нормализуются, пустые записи и пустые цены отбрасываются.
	for date, slots := range cfg.BookedSlots {
		if date.IsZero() {
			return fmt.Errorf("%w: empty date key in bookedSlots", ErrSeedInvalid)
		}
		for _, slot := range slots {
			if !slot.IsValid() {
				return fmt.Errorf("%w: unknown slot %q for date %s", ErrSeedInvalid, slot, date)
			}
		}
		s.SetBookedSlots(date, slots)
	}

	for date, prices := range cfg.CustomPrices {
		if date.IsZero() {
			return fmt.Errorf("%w: empty date key in customPrices", ErrSeedInvalid)
		}
		for slot := range prices {
			if !slot.IsValid() {
				return fmt.Errorf("%w: unknown slot %q for date %s", ErrSeedInvalid, slot, date)
			}
		}
		s.ReplaceDayOverrides(date, prices)
	}

	return nil
}
