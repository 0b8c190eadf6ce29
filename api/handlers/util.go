package handlers

import (
	"encoding/json"
	"math/big"
	"net/http"
	"strconv"
)

// BigInt encodes raw token amounts as decimal strings since uint256 values
// do not fit into JSON numbers.
type BigInt struct {
	*big.Int
}

func (b BigInt) MarshalJSON() ([]byte, error) {
	if b.Int == nil {
		return []byte("null"), nil
	}
	return []byte(strconv.Quote(b.String())), nil
}

func JSONResponse(w http.ResponseWriter, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		JSONError(w, err, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func JSONError(w http.ResponseWriter, err error, code int) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(struct {
		Code   int    `json:"code"`
		Reason string `json:"reason"`
	}{
		Code:   code,
		Reason: err.Error(),
	})
}
