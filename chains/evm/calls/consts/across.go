package consts

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// GAS_USED_PER_SPOKE_POOL_FILL is the gas consumed by an average fillV3Relay call.
const GAS_USED_PER_SPOKE_POOL_FILL uint64 = 100_000

var HubPoolABI, _ = abi.JSON(strings.NewReader(`
[
  {
    "inputs": [
      {
        "internalType": "address",
        "name": "l1Token",
        "type": "address"
      }
    ],
    "name": "liquidityUtilizationCurrent",
    "outputs": [
      {
        "internalType": "uint256",
        "name": "",
        "type": "uint256"
      }
    ],
    "stateMutability": "nonpayable",
    "type": "function"
  },
  {
    "inputs": [
      {
        "internalType": "address",
        "name": "l1Token",
        "type": "address"
      },
      {
        "internalType": "uint256",
        "name": "relayedAmount",
        "type": "uint256"
      }
    ],
    "name": "liquidityUtilizationPostRelay",
    "outputs": [
      {
        "internalType": "uint256",
        "name": "",
        "type": "uint256"
      }
    ],
    "stateMutability": "nonpayable",
    "type": "function"
  }
]
`))

var ConfigStoreABI, _ = abi.JSON(strings.NewReader(`
[
  {
    "inputs": [
      {
        "internalType": "address",
        "name": "",
        "type": "address"
      }
    ],
    "name": "l1TokenConfig",
    "outputs": [
      {
        "internalType": "string",
        "name": "",
        "type": "string"
      }
    ],
    "stateMutability": "view",
    "type": "function"
  }
]
`))

var SpokePoolABI, _ = abi.JSON(strings.NewReader(`
[
  {
    "inputs": [
      {
        "components": [
          { "internalType": "address", "name": "depositor", "type": "address" },
          { "internalType": "address", "name": "recipient", "type": "address" },
          { "internalType": "address", "name": "exclusiveRelayer", "type": "address" },
          { "internalType": "address", "name": "inputToken", "type": "address" },
          { "internalType": "address", "name": "outputToken", "type": "address" },
          { "internalType": "uint256", "name": "inputAmount", "type": "uint256" },
          { "internalType": "uint256", "name": "outputAmount", "type": "uint256" },
          { "internalType": "uint256", "name": "originChainId", "type": "uint256" },
          { "internalType": "uint32", "name": "depositId", "type": "uint32" },
          { "internalType": "uint32", "name": "fillDeadline", "type": "uint32" },
          { "internalType": "uint32", "name": "exclusivityDeadline", "type": "uint32" },
          { "internalType": "bytes", "name": "message", "type": "bytes" }
        ],
        "internalType": "struct V3SpokePoolInterface.V3RelayData",
        "name": "relayData",
        "type": "tuple"
      },
      {
        "internalType": "uint256",
        "name": "repaymentChainId",
        "type": "uint256"
      }
    ],
    "name": "fillV3Relay",
    "outputs": [],
    "stateMutability": "nonpayable",
    "type": "function"
  },
  {
    "anonymous": false,
    "inputs": [
      { "indexed": false, "internalType": "address", "name": "inputToken", "type": "address" },
      { "indexed": false, "internalType": "address", "name": "outputToken", "type": "address" },
      { "indexed": false, "internalType": "uint256", "name": "inputAmount", "type": "uint256" },
      { "indexed": false, "internalType": "uint256", "name": "outputAmount", "type": "uint256" },
      { "indexed": true, "internalType": "uint256", "name": "destinationChainId", "type": "uint256" },
      { "indexed": true, "internalType": "uint32", "name": "depositId", "type": "uint32" },
      { "indexed": false, "internalType": "uint32", "name": "quoteTimestamp", "type": "uint32" },
      { "indexed": false, "internalType": "uint32", "name": "fillDeadline", "type": "uint32" },
      { "indexed": false, "internalType": "uint32", "name": "exclusivityDeadline", "type": "uint32" },
      { "indexed": true, "internalType": "address", "name": "depositor", "type": "address" },
      { "indexed": false, "internalType": "address", "name": "recipient", "type": "address" },
      { "indexed": false, "internalType": "address", "name": "exclusiveRelayer", "type": "address" },
      { "indexed": false, "internalType": "bytes", "name": "message", "type": "bytes" }
    ],
    "name": "V3FundsDeposited",
    "type": "event"
  },
  { "inputs": [], "name": "DisabledRoute", "type": "error" },
  { "inputs": [], "name": "ExpiredFillDeadline", "type": "error" },
  { "inputs": [], "name": "InvalidChainId", "type": "error" },
  { "inputs": [], "name": "InvalidExclusiveRelayer", "type": "error" },
  { "inputs": [], "name": "InvalidFillDeadline", "type": "error" },
  { "inputs": [], "name": "MsgValueDoesNotMatchInputAmount", "type": "error" },
  { "inputs": [], "name": "NotExclusiveRelayer", "type": "error" },
  { "inputs": [], "name": "RelayFilled", "type": "error" }
]
`))

var ERC20ABI, _ = abi.JSON(strings.NewReader(`
[
  {
    "inputs": [
      { "internalType": "address", "name": "owner", "type": "address" },
      { "internalType": "address", "name": "spender", "type": "address" }
    ],
    "name": "allowance",
    "outputs": [{ "internalType": "uint256", "name": "", "type": "uint256" }],
    "stateMutability": "view",
    "type": "function"
  },
  {
    "inputs": [
      { "internalType": "address", "name": "spender", "type": "address" },
      { "internalType": "uint256", "name": "amount", "type": "uint256" }
    ],
    "name": "approve",
    "outputs": [{ "internalType": "bool", "name": "", "type": "bool" }],
    "stateMutability": "nonpayable",
    "type": "function"
  }
]
`))
