package across_test

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/suite"

	"github.com/sprintertech/across-relayer/protocol/across"
)

type ChainsTestSuite struct {
	suite.Suite
}

func TestRunChainsTestSuite(t *testing.T) {
	suite.Run(t, new(ChainsTestSuite))
}

func (s *ChainsTestSuite) Test_HubDeployment() {
	hub, ok := across.HubDeployment(across.HUB_CHAIN_ID)

	s.True(ok)
	s.Equal(across.ETHEREUM_CHAIN_ID, hub.ChainID)
	s.Equal(common.HexToAddress("0xc186fA914353c44b2E33eBE05f21846F1048bEda"), hub.HubPool)
	s.Equal(common.HexToAddress("0x3B03509645713718B78951126E0A6de6f10043f5"), hub.ConfigStore)
}

func (s *ChainsTestSuite) Test_HubDeployment_SpokeOnlyChain() {
	_, supported := across.SupportedChain(across.ARBITRUM_CHAIN_ID)
	_, ok := across.HubDeployment(across.ARBITRUM_CHAIN_ID)

	s.True(supported)
	s.False(ok)
}

func (s *ChainsTestSuite) Test_SupportedChainIDs_Sorted() {
	ids := across.SupportedChainIDs()

	s.Equal(across.ETHEREUM_CHAIN_ID, ids[0])
	s.Equal(across.ZORA_CHAIN_ID, ids[len(ids)-1])
	s.Len(ids, 12)
}
