package get_day_schedule

import (
	"github.com/rakanz/chalet-booking-service/internal/domain"
)

// Request модель запроса расписания одного дня
type Request struct {
	Date domain.DateKey
}

// SlotView is the display state of one slot on the requested date.
type SlotView struct {
	Slot        domain.SlotKind
	SessionTime string
	Available   bool
	Price       string
	Overridden  bool
}

// Response модель ответа с расписанием дня
type Response struct {
	Date  domain.DateKey
	Slots []SlotView
}
