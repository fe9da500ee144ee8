package domain

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Account is an address managed by the node
type Account struct {
	Address common.Address `json:"address"`
	Balance *big.Int       `json:"balance"`
}

// CreationTx is a contract-creation transaction ready to be sent
type CreationTx struct {
	From     common.Address
	Data     []byte
	Gas      uint64
	GasPrice *big.Int
	Value    *big.Int
}

// Receipt is the subset of a transaction receipt sling reports
type Receipt struct {
	TxHash          common.Hash
	ContractAddress common.Address
	BlockNumber     uint64
	GasUsed         uint64
	Status          uint64
}
