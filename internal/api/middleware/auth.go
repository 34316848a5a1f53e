package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/rakanz/chalet-booking-service/internal/api/handlers"
)

// OwnerPINHeader несет общий секрет владельца. Любое другое значение
// (включая отсутствие заголовка) дает гостевой набор возможностей —
// маршруты только для чтения.
const OwnerPINHeader = "X-Owner-PIN"

const msgOwnerOnly = "owner PIN required"

// OwnerAuth пропускает запрос дальше только при точном совпадении PIN.
// Это статический общий секрет на страницу, не аутентификация
// пользователей.
func OwnerAuth(ownerPIN string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			pin := r.Header.Get(OwnerPINHeader)
			if subtle.ConstantTimeCompare([]byte(pin), []byte(ownerPIN)) != 1 {
				handlers.RespondForbidden(w, msgOwnerOnly)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
