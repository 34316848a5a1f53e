package domain

import "errors"

var (
	// ErrUnknownSlot возвращается при неизвестном типе слота
	ErrUnknownSlot = errors.New("domain: unknown slot kind")

	// ErrMalformedDate возвращается при дате не в формате YYYY-MM-DD
	ErrMalformedDate = errors.New("domain: malformed date, expected YYYY-MM-DD")
)
