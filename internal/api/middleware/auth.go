package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/hoteleiro/HFD-ReservationService/internal/api/handlers"
)

// HeaderStaffID identifies the front-desk operator on protected routes.
// The gateway in front of the service fills it in after authenticating
// the operator session.
const HeaderStaffID = "X-Staff-ID"

type contextKey string

const staffIDKey contextKey = "staffID"

// Auth rejects requests without a numeric staff header and stores the
// operator id in the request context.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(HeaderStaffID)
		if raw == "" {
			handlers.RespondUnauthorized(w, "cabeçalho X-Staff-ID ausente")
			return
		}

		staffID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			handlers.RespondUnauthorized(w, "cabeçalho X-Staff-ID inválido")
			return
		}

		ctx := context.WithValue(r.Context(), staffIDKey, staffID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetStaffID returns the operator id stored by Auth.
func GetStaffID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(staffIDKey).(int64)
	return id, ok
}
