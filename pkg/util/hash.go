package util

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/twmb/murmur3"
)

// HashName returns the value stored in the name_hash column
func HashName(name string) uint32 {
	return murmur3.Sum32([]byte(name))
}

// EscrowAddress derives the holder address of a campaign from its name
func EscrowAddress(name string) common.Address {
	return common.BytesToAddress(crypto.Keccak256([]byte(name))[12:])
}
