package response

import (
	"encoding/json"
	"net/http"
)

// JSON writes data as a JSON response with the given status. Encoding
// errors at this point cannot be reported to the client anymore, so
// they are dropped.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(data)
}

// NoContent writes a 204 No Content response
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
