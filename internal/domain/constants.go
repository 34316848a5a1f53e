package domain

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Currency is the fixed venue currency; prices are opaque labelled strings.
const Currency = "JOD"

// Fallback price labels shown before any date is selected. These are static
// display values, not computed defaults, and intentionally differ from the
// day-of-week price table.
const (
	FallbackPriceMorning = "50 JOD"
	FallbackPriceEvening = "70 JOD"
	FallbackPriceFullDay = "100 JOD"
)

// Session time labels for the slot catalog.
const (
	SessionTimeMorning = "9:00 AM - 8:00 PM"
	SessionTimeEvening = "9:00 PM - 8:00 AM (Next Day)"
	SessionTimeFullDay = "10:00 AM - 8:00 AM (Next Day)"
)
