package save_date_prices

import (
	"github.com/rakanz/chalet-booking-service/internal/domain"
	"github.com/rakanz/chalet-booking-service/internal/service/prices/models"
)

// SaveDatePricesRequest HTTP request model. Absent fields leave the slot at
// its default; a field equal to the computed default clears any override.
type SaveDatePricesRequest struct {
	Morning *string `json:"morning,omitempty"`
	Evening *string `json:"evening,omitempty"`
	FullDay *string `json:"fullDay,omitempty"`
}

// ToProposedPrices конвертирует HTTP request в карту предложенных цен
func (r *SaveDatePricesRequest) ToProposedPrices() map[domain.SlotKind]string {
	proposed := make(map[domain.SlotKind]string, 3)
	if r.Morning != nil {
		proposed[domain.SlotMorning] = *r.Morning
	}
	if r.Evening != nil {
		proposed[domain.SlotEvening] = *r.Evening
	}
	if r.FullDay != nil {
		proposed[domain.SlotFullDay] = *r.FullDay
	}
	return proposed
}

// DayPricesResponse HTTP response model
type DayPricesResponse struct {
	Date  string      `json:"date"`
	Slots []SlotPrice `json:"slots"`
}

// SlotPrice эффективная цена одного слота
type SlotPrice struct {
	Slot       string `json:"slot"`
	Price      string `json:"price"`
	Overridden bool   `json:"overridden"`
}

// FromServiceModel конвертирует модель сервиса в HTTP response
func FromServiceModel(day *models.DayPrices) *DayPricesResponse {
	slots := make([]SlotPrice, len(day.Slots))
	for i, slot := range day.Slots {
		slots[i] = SlotPrice{
			Slot:       string(slot.Slot),
			Price:      slot.Price,
			Overridden: slot.Overridden,
		}
	}

	return &DayPricesResponse{
		Date:  day.Date.String(),
		Slots: slots,
	}
}
