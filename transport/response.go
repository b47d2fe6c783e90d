package transport

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/easyfind/storefront/constant"
	"github.com/easyfind/storefront/utils/errors"
)

type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError maps CustomError to its HTTP status; anything else is reported
// as a generic internal failure.
func writeError(w http.ResponseWriter, err error) {
	var ce errors.CustomError
	if !stderrors.As(err, &ce) {
		ce = errors.SetCustomError(constant.ErrInternal)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(ce.ErrorHTTPCode())
	_ = json.NewEncoder(w).Encode(errorBody{Error: ce.Error(), Code: ce.ErrorCode()})
}
