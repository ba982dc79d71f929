package registry

import "github.com/ethereum/go-ethereum/common"

// Per-family address books: chain ID to registry contract.
//
//nolint:gochecknoglobals
var registries = map[Family]map[int64]common.Address{
	ENS: {
		1:        common.HexToAddress("0x00000000000C2E074eC69A0dBFbF2615a6b7c48d"), // mainnet
		5:        common.HexToAddress("0x00000000000C2E074eC69A0dBFbF2615a6b7c48d"), // goerli
		11155111: common.HexToAddress("0x00000000000C2E074eC69A0dBFbF2615a6b7c48d"), // sepolia
		17000:    common.HexToAddress("0x00000000000C2E074eC69A0dBFbF2615a6b7c48d"), // holesky
	},
	CNS: {
		1: common.HexToAddress("0xD1E5b0FF1287aA9f9A268759062E4Ab08b9Dacbe"), // mainnet
		5: common.HexToAddress("0xAad76bea7CFEc82927239415BB18D2e93518ecBB"), // goerli
	},
	UNS: {
		1:     common.HexToAddress("0x049aba7510f45BA5b64ea9E658E342F904DB358D"), // mainnet
		5:     common.HexToAddress("0x070e83FCed225184E67c86302493ffFCDB953f71"), // goerli
		137:   common.HexToAddress("0xa9a6A3626993D487d2Dbda3173cf58cA1a9D9e9f"), // polygon
		80001: common.HexToAddress("0x2a93C52E7B6E7054870758e15A1446E769EdfB93"), // mumbai
	},
}
