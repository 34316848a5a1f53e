package state

import "errors"

var (
	// ErrSeedRead возвращается при ошибке чтения seed-файла
	ErrSeedRead = errors.New("state.store: failed to read seed file")

	// ErrSeedDecode возвращается при ошибке разбора seed-файла
	ErrSeedDecode = errors.New("state.store: failed to decode seed file")

	// ErrSeedInvalid возвращается, когда seed-файл нарушает инварианты состояния
	ErrSeedInvalid = errors.New("state.store: invalid seed data")
)
