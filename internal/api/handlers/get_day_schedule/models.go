package get_day_schedule

import (
	getDaySchedule "github.com/rakanz/chalet-booking-service/internal/usecase/get_day_schedule"
)

// DayScheduleResponse HTTP response model
type DayScheduleResponse struct {
	Date  string         `json:"date"`
	Slots []ScheduleSlot `json:"slots"`
}

// ScheduleSlot состояние одного слота на дату
type ScheduleSlot struct {
	Slot        string `json:"slot"`
	SessionTime string `json:"sessionTime"`
	Available   bool   `json:"available"`
	Price       string `json:"price"`
	Overridden  bool   `json:"overridden"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDaySchedule.Response) *DayScheduleResponse {
	slots := make([]ScheduleSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = ScheduleSlot{
			Slot:        string(slot.Slot),
			SessionTime: slot.SessionTime,
			Available:   slot.Available,
			Price:       slot.Price,
			Overridden:  slot.Overridden,
		}
	}

	return &DayScheduleResponse{
		Date:  resp.Date.String(),
		Slots: slots,
	}
}
