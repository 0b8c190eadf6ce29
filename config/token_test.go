package config_test

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/suite"

	"github.com/sprintertech/across-relayer/config"
)

type SupportedTokenTestSuite struct {
	suite.Suite
}

func TestRunSupportedTokenTestSuite(t *testing.T) {
	suite.Run(t, new(SupportedTokenTestSuite))
}

func (s *SupportedTokenTestSuite) Test_ToRawAmount() {
	amount, err := config.ToRawAmount("1.5", 6)
	s.Nil(err)
	s.Equal(big.NewInt(1_500_000), amount)

	amount, err = config.ToRawAmount("0.1", 18)
	s.Nil(err)
	s.Equal(big.NewInt(100_000_000_000_000_000), amount)

	_, err = config.ToRawAmount("-1", 6)
	s.NotNil(err)

	_, err = config.ToRawAmount("one", 6)
	s.NotNil(err)
}

func (s *SupportedTokenTestSuite) Test_InvalidAddress() {
	_, err := config.NewSupportedToken(config.RawSupportedToken{
		Address:   "invalid",
		Symbol:    "USDC",
		Decimals:  6,
		MinAmount: "1",
		MaxAmount: "10",
	}, true)

	s.NotNil(err)
}

func (s *SupportedTokenTestSuite) Test_MissingSymbol() {
	_, err := config.NewSupportedToken(config.RawSupportedToken{
		Address:   "0xaf88d065e77c8cC2239327C5EDb3A432268e5831",
		Decimals:  6,
		MinAmount: "1",
		MaxAmount: "10",
	}, true)

	s.NotNil(err)
}

func (s *SupportedTokenTestSuite) Test_InvalidL1Token() {
	_, err := config.NewSupportedToken(config.RawSupportedToken{
		Address:   "0xaf88d065e77c8cC2239327C5EDb3A432268e5831",
		Symbol:    "USDC",
		Decimals:  6,
		MinAmount: "1",
		MaxAmount: "10",
		L1Token:   "invalid",
	}, false)

	s.NotNil(err)
}

func (s *SupportedTokenTestSuite) Test_L1TokenRequiredOutsideHomeChain() {
	_, err := config.NewSupportedToken(config.RawSupportedToken{
		Address:   "0xaf88d065e77c8cC2239327C5EDb3A432268e5831",
		Symbol:    "USDC",
		Decimals:  6,
		MinAmount: "1",
		MaxAmount: "10",
	}, false)

	s.NotNil(err)
}

func (s *SupportedTokenTestSuite) Test_L1TokenOutsideHomeChain() {
	token, err := config.NewSupportedToken(config.RawSupportedToken{
		Address:   "0xaf88d065e77c8cC2239327C5EDb3A432268e5831",
		Symbol:    "USDC",
		Decimals:  6,
		MinAmount: "1",
		MaxAmount: "10",
		L1Token:   "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48",
	}, false)

	s.Nil(err)
	s.Equal(common.HexToAddress("0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"), token.L1Token)
	s.Equal(big.NewInt(1_000_000), token.MinAmount)
	s.Equal(big.NewInt(10_000_000), token.MaxAmount)
}

func (s *SupportedTokenTestSuite) Test_HomeChainTokenDefaultsToItself() {
	token, err := config.NewSupportedToken(config.RawSupportedToken{
		Address:   "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48",
		Symbol:    "USDC",
		Decimals:  6,
		MinAmount: "1",
		MaxAmount: "10",
	}, true)

	s.Nil(err)
	s.Equal(common.HexToAddress("0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"), token.L1Token)
}
