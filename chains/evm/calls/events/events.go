// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package events

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

type EventSig string

func (es EventSig) GetTopic() common.Hash {
	return crypto.Keccak256Hash([]byte(es))
}

const (
	AcrossDepositSig EventSig = "V3FundsDeposited(address,address,uint256,uint256,uint256,uint32,uint32,uint32,uint32,address,address,address,bytes)"
)

// AcrossDeposit is a V3FundsDeposited event emitted by a SpokePool.
type AcrossDeposit struct {
	InputToken          common.Address
	OutputToken         common.Address
	InputAmount         *big.Int
	OutputAmount        *big.Int
	DestinationChainId  *big.Int
	DepositId           uint32
	QuoteTimestamp      uint32
	FillDeadline        uint32
	ExclusivityDeadline uint32
	Depositor           common.Address
	Recipient           common.Address
	ExclusiveRelayer    common.Address
	Message             []byte

	// Log metadata pinning the deposit to the block it was emitted in.
	BlockNumber uint64
	BlockHash   common.Hash
	TxHash      common.Hash
	LogIndex    uint
}

// Key identifies a deposit emission on its origin chain. A deposit
// re-included in another block after a reorg gets a new key.
func (d *AcrossDeposit) Key(originChainID uint64) string {
	return fmt.Sprintf("%d-%d-%s", originChainID, d.DepositId, d.BlockHash.Hex())
}
