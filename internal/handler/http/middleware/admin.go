package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/tendaops/backoffice-go/internal/handler/http/response"
)

// AdminOnly guards destructive operations: payroll runs, roster edits,
// punch and ledger corrections.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Unauthorized(w, "Invalid token")
			return
		}

		role, ok := claims["role"].(string)
		if !ok || role != "admin" {
			response.Forbidden(w, "Administrator privilege required")
			return
		}

		next.ServeHTTP(w, r)
	})
}
