package across

import (
	"maps"
	"slices"

	"github.com/ethereum/go-ethereum/common"
)

const (
	ETHEREUM_CHAIN_ID uint64 = 1
	OPTIMISM_CHAIN_ID uint64 = 10
	POLYGON_CHAIN_ID  uint64 = 137
	ZKSYNC_CHAIN_ID   uint64 = 324
	WORLD_CHAIN_ID    uint64 = 480
	LISK_CHAIN_ID     uint64 = 1135
	BASE_CHAIN_ID     uint64 = 8453
	MODE_CHAIN_ID     uint64 = 34443
	ARBITRUM_CHAIN_ID uint64 = 42161
	LINEA_CHAIN_ID    uint64 = 59144
	BLAST_CHAIN_ID    uint64 = 81457
	ZORA_CHAIN_ID     uint64 = 7777777

	// HUB_CHAIN_ID is the chain hosting the HubPool and the rate model configuration.
	HUB_CHAIN_ID = ETHEREUM_CHAIN_ID

	WRAPPED_NATIVE_SYMBOL = "WETH"
)

// Hub holds the addresses of the contracts deployed on the hub chain.
type Hub struct {
	ChainID     uint64
	HubPool     common.Address
	ConfigStore common.Address
}

var hubs = map[uint64]Hub{
	ETHEREUM_CHAIN_ID: {
		ChainID:     ETHEREUM_CHAIN_ID,
		HubPool:     common.HexToAddress("0xc186fA914353c44b2E33eBE05f21846F1048bEda"),
		ConfigStore: common.HexToAddress("0x3B03509645713718B78951126E0A6de6f10043f5"),
	},
}

// HubDeployment returns the hub contracts of the chain or false if the
// chain does not host the HubPool.
func HubDeployment(id uint64) (Hub, bool) {
	h, ok := hubs[id]
	return h, ok
}

// Chain holds the protocol deployment data of a supported chain.
type Chain struct {
	ID            uint64
	SpokePool     common.Address
	WrappedNative common.Address
}

var supportedChains = map[uint64]Chain{
	ETHEREUM_CHAIN_ID: {
		ID:            ETHEREUM_CHAIN_ID,
		SpokePool:     common.HexToAddress("0x5c7BCd6E7De5423a257D81B442095A1a6ced35C5"),
		WrappedNative: common.HexToAddress("0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2"),
	},
	OPTIMISM_CHAIN_ID: {
		ID:            OPTIMISM_CHAIN_ID,
		SpokePool:     common.HexToAddress("0x6f26Bf09B1C792e3228e5467807a900A503c0281"),
		WrappedNative: common.HexToAddress("0x4200000000000000000000000000000000000006"),
	},
	POLYGON_CHAIN_ID: {
		ID:            POLYGON_CHAIN_ID,
		SpokePool:     common.HexToAddress("0x9295ee1d8C5b022Be115A2AD3c30C72E34e7F096"),
		WrappedNative: common.HexToAddress("0x7ceB23fD6bC0adD59E62ac25578270cFf1b9f619"),
	},
	ZKSYNC_CHAIN_ID: {
		ID:            ZKSYNC_CHAIN_ID,
		SpokePool:     common.HexToAddress("0xE0B015E54d54fc84a6cB9B666099c46adE9335FF"),
		WrappedNative: common.HexToAddress("0x5AEa5775959fBC2557Cc8789bC1bf90A239D9a91"),
	},
	WORLD_CHAIN_ID: {
		ID:            WORLD_CHAIN_ID,
		SpokePool:     common.HexToAddress("0x09aea4b2242abC8bb4BB78D537A67a245A7bEC64"),
		WrappedNative: common.HexToAddress("0x4200000000000000000000000000000000000006"),
	},
	LISK_CHAIN_ID: {
		ID:            LISK_CHAIN_ID,
		SpokePool:     common.HexToAddress("0x9552a0a6624A23B848060AE5901659CDDa1f83f8"),
		WrappedNative: common.HexToAddress("0x4200000000000000000000000000000000000006"),
	},
	BASE_CHAIN_ID: {
		ID:            BASE_CHAIN_ID,
		SpokePool:     common.HexToAddress("0x09aea4b2242abC8bb4BB78D537A67a245A7bEC64"),
		WrappedNative: common.HexToAddress("0x4200000000000000000000000000000000000006"),
	},
	MODE_CHAIN_ID: {
		ID:            MODE_CHAIN_ID,
		SpokePool:     common.HexToAddress("0x3baD7AD0728f9917d1Bf08af5782dCbD516cDd96"),
		WrappedNative: common.HexToAddress("0x4200000000000000000000000000000000000006"),
	},
	ARBITRUM_CHAIN_ID: {
		ID:            ARBITRUM_CHAIN_ID,
		SpokePool:     common.HexToAddress("0xe35e9842fceaCA96570B734083f4a58e8F7C5f2A"),
		WrappedNative: common.HexToAddress("0x82aF49447D8a07e3bd95BD0d56f35241523fBab1"),
	},
	LINEA_CHAIN_ID: {
		ID:            LINEA_CHAIN_ID,
		SpokePool:     common.HexToAddress("0x7E63A5f1a8F0B4d0934B2f2327DAED3F6bb2ee75"),
		WrappedNative: common.HexToAddress("0xe5D7C2a44FfDDf6b295A15c148167daaAf5Cf34f"),
	},
	BLAST_CHAIN_ID: {
		ID:            BLAST_CHAIN_ID,
		SpokePool:     common.HexToAddress("0x2D509190Ed0172ba588407D4c2df918F955Cc6E1"),
		WrappedNative: common.HexToAddress("0x4300000000000000000000000000000000000004"),
	},
	ZORA_CHAIN_ID: {
		ID:            ZORA_CHAIN_ID,
		SpokePool:     common.HexToAddress("0x13fDac9F9b4777705db45291bbFF3c972c6d1d97"),
		WrappedNative: common.HexToAddress("0x4200000000000000000000000000000000000006"),
	},
}

// SupportedChain returns deployment data for the chain or false if the
// chain is not part of the protocol.
func SupportedChain(id uint64) (Chain, bool) {
	c, ok := supportedChains[id]
	return c, ok
}

// SupportedChainIDs returns all supported chain ids in ascending order.
func SupportedChainIDs() []uint64 {
	ids := slices.Collect(maps.Keys(supportedChains))
	slices.Sort(ids)
	return ids
}
