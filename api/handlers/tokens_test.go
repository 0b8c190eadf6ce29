package handlers_test

import (
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/suite"

	"github.com/sprintertech/across-relayer/api/handlers"
	"github.com/sprintertech/across-relayer/chains/evm"
	"github.com/sprintertech/across-relayer/config"
	"github.com/sprintertech/across-relayer/config/chain"
)

type TokensHandlerTestSuite struct {
	suite.Suite

	handler *handlers.TokensHandler
}

func TestRunTokensHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TokensHandlerTestSuite))
}

func (s *TokensHandlerTestSuite) SetupTest() {
	id := uint64(42161)
	table, err := evm.NewChainTable(nil, []*evm.DestinationChainConfig{
		{
			GeneralChainConfig: chain.GeneralChainConfig{Id: &id, Name: "arbitrum"},
			SupportedTokens: []config.SupportedToken{
				{
					Address:   common.HexToAddress("0xaf88d065e77c8cC2239327C5EDb3A432268e5831"),
					Symbol:    "USDC",
					Decimals:  6,
					MinAmount: big.NewInt(1_000_000),
					MaxAmount: big.NewInt(1_000_000_000),
				},
			},
		},
	})
	s.Nil(err)

	s.handler = handlers.NewTokensHandler(table)
}

func (s *TokensHandlerTestSuite) request(chainID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/v1/chains/"+chainID+"/tokens", nil)
	req = mux.SetURLVars(req, map[string]string{
		"chainId": chainID,
	})

	recorder := httptest.NewRecorder()
	s.handler.HandleRequest(recorder, req)
	return recorder
}

func (s *TokensHandlerTestSuite) Test_HandleRequest_InvalidChainID() {
	recorder := s.request("invalid")

	s.Equal(http.StatusBadRequest, recorder.Code)
}

func (s *TokensHandlerTestSuite) Test_HandleRequest_UnknownDestination() {
	recorder := s.request("10")

	s.Equal(http.StatusNotFound, recorder.Code)
}

func (s *TokensHandlerTestSuite) Test_HandleRequest_ValidTokens() {
	recorder := s.request("42161")

	s.Equal(http.StatusOK, recorder.Code)

	var tokens []map[string]interface{}
	err := json.Unmarshal(recorder.Body.Bytes(), &tokens)
	s.Nil(err)
	s.Len(tokens, 1)
	s.Equal("USDC", tokens[0]["symbol"])
	s.Equal(float64(6), tokens[0]["decimals"])
	s.Equal("1000000", tokens[0]["minAmount"])
	s.Equal("1000000000", tokens[0]["maxAmount"])
	s.Equal("0xaf88d065e77c8cc2239327c5edb3a432268e5831", tokens[0]["address"])
}
