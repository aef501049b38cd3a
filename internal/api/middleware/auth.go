package middleware

import (
	"net/http"

	"github.com/m04kA/PetCare-BookingService/internal/api/handlers"
)

// AdminPINHeader заголовок с PIN владельца
const AdminPINHeader = "X-Admin-PIN"

const msgForbidden = "неверный PIN администратора"

// AdminAuth пропускает запрос, только если X-Admin-PIN совпадает с PIN из настроек
func AdminAuth(checker PINChecker, log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			pin := r.Header.Get(AdminPINHeader)
			if pin == "" {
				log.Warn("%s %s - Missing admin PIN", r.Method, r.URL.Path)
				handlers.RespondForbidden(w, msgForbidden)
				return
			}

			ok, err := checker.CheckPIN(r.Context(), pin)
			if err != nil {
				log.Error("%s %s - Failed to check admin PIN: %v", r.Method, r.URL.Path, err)
				handlers.RespondInternalError(w)
				return
			}
			if !ok {
				log.Warn("%s %s - Invalid admin PIN", r.Method, r.URL.Path)
				handlers.RespondForbidden(w, msgForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
