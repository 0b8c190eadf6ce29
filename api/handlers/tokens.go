package handlers

import (
	"fmt"
	"math/big"
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gorilla/mux"

	"github.com/sprintertech/across-relayer/chains/evm"
)

type DestinationRegistry interface {
	Destination(id uint64) (evm.DestinationChainConfig, bool)
}

type TokenResponse struct {
	Address   common.Address `json:"address"`
	Symbol    string         `json:"symbol"`
	Decimals  uint8          `json:"decimals"`
	MinAmount BigInt         `json:"minAmount"`
	MaxAmount BigInt         `json:"maxAmount"`
}

type TokensHandler struct {
	destinations DestinationRegistry
}

func NewTokensHandler(destinations DestinationRegistry) *TokensHandler {
	return &TokensHandler{
		destinations: destinations,
	}
}

// HandleRequest returns the tokens the relayer fills on the requested destination chain
func (h *TokensHandler) HandleRequest(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	chainId, ok := new(big.Int).SetString(vars["chainId"], 10)
	if !ok {
		JSONError(w, fmt.Errorf("invalid chainId"), http.StatusBadRequest)
		return
	}

	destination, ok := h.destinations.Destination(chainId.Uint64())
	if !ok {
		JSONError(w, fmt.Errorf("chain %d is not a destination chain", chainId.Uint64()), http.StatusNotFound)
		return
	}

	tokens := make([]TokenResponse, len(destination.SupportedTokens))
	for i, t := range destination.SupportedTokens {
		tokens[i] = TokenResponse{
			Address:   t.Address,
			Symbol:    t.Symbol,
			Decimals:  t.Decimals,
			MinAmount: BigInt{t.MinAmount},
			MaxAmount: BigInt{t.MaxAmount},
		}
	}

	JSONResponse(w, tokens)
}
