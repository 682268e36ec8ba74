package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"retreat-backoffice/internal/model"
)

func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if recovered := recover(); recovered != nil {
				slog.Error("panic recovered", "error", fmt.Sprintf("%v", recovered), "stack", string(debug.Stack()))
				writeJSON(w, http.StatusInternalServerError, model.APIResponse{
					Success: false,
					Message: "Unexpected server error",
					Error:   "INTERNAL_ERROR",
				})
			}
		}()

		next.ServeHTTP(w, r)
	})
}
