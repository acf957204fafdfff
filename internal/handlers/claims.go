package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/snackops/snackledger/internal/jwt"
	"github.com/snackops/snackledger/internal/middlewares"
)

// callerClaims pulls the authenticated caller's claims from the request
// context, answering 401 when the auth middleware never ran.
func callerClaims(w http.ResponseWriter, r *http.Request) (*jwt.Claims, bool) {
	claims := middlewares.ClaimsFromContext(r.Context())
	if claims == nil {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
		return nil, false
	}
	return claims, true
}
