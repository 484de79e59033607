package model

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// Uint128 is an unsigned 128-bit integer as emitted by Move.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// Big returns the value as a big.Int.
func (u Uint128) Big() *big.Int {
	v := new(big.Int).SetUint64(u.Hi)
	v.Lsh(v, 64)
	return v.Or(v, new(big.Int).SetUint64(u.Lo))
}

// Decimal returns the value as an integral decimal.
func (u Uint128) Decimal() decimal.Decimal {
	return decimal.NewFromBigInt(u.Big(), 0)
}

func (u Uint128) String() string {
	return u.Big().String()
}
