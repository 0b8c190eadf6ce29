package client

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/core/types"
	evmClient "github.com/sygmaprotocol/sygma-core/chains/evm/client"
	"github.com/sygmaprotocol/sygma-core/crypto/secp256k1"
)

// Signer produces [R || S || V] signatures of transaction digests.
type Signer = evmClient.Signer

// NewPrivateKeySigner loads a secp256k1 keypair from a hex encoded private key.
func NewPrivateKeySigner(hexKey string) (*secp256k1.Keypair, error) {
	kp, err := secp256k1.NewKeypairFromString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}
	return kp, nil
}

// SignTx signs the transaction for the chain with the signer.
func SignTx(signer Signer, tx *types.Transaction, chainID *big.Int) (*types.Transaction, error) {
	txSigner := types.LatestSignerForChainID(chainID)
	sig, err := signer.Sign(txSigner.Hash(tx).Bytes())
	if err != nil {
		return nil, err
	}
	return tx.WithSignature(txSigner, sig)
}
