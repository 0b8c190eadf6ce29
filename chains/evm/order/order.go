package order

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/sprintertech/across-relayer/config"
)

// V3RelayData is the fillV3Relay relay data tuple.
type V3RelayData struct {
	Depositor           common.Address
	Recipient           common.Address
	ExclusiveRelayer    common.Address
	InputToken          common.Address
	OutputToken         common.Address
	InputAmount         *big.Int
	OutputAmount        *big.Int
	OriginChainId       *big.Int
	DepositId           uint32
	FillDeadline        uint32
	ExclusivityDeadline uint32
	Message             []byte
}

// NormalizedFillOrder is an accepted deposit ready to be filled on its
// destination chain.
type NormalizedFillOrder struct {
	RelayData          V3RelayData
	DestinationChainId uint64
	Token              config.SupportedToken

	BlockNumber    uint64
	BlockHash      common.Hash
	QuoteTimestamp uint32
}

func (o NormalizedFillOrder) OriginChainID() uint64 {
	return o.RelayData.OriginChainId.Uint64()
}

func (o NormalizedFillOrder) OriginBlock() (uint64, common.Hash) {
	return o.BlockNumber, o.BlockHash
}

func (o NormalizedFillOrder) Amount() *big.Int {
	return o.RelayData.InputAmount
}
