package domain

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/params"
)

// Auto defers a gas setting to the node
const Auto = "auto"

// Defaults carried by the deployment transaction unless overridden
const (
	DefaultGasLimit = uint64(1_500_000)
	DefaultGasPrice = "30000000000"
)

// GasSetting is either a fixed value or deferred to the node
type GasSetting struct {
	Auto  bool
	Value *big.Int
}

// ParseGasLimit parses a gas limit or "auto"
func ParseGasLimit(s string) (GasSetting, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return GasSetting{Value: new(big.Int).SetUint64(DefaultGasLimit)}, nil
	}
	if strings.EqualFold(s, Auto) {
		return GasSetting{Auto: true}, nil
	}
	gas, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return GasSetting{}, fmt.Errorf("invalid gas limit %q: %w", s, err)
	}
	if gas == 0 {
		return GasSetting{}, fmt.Errorf("invalid gas limit %q: must be positive", s)
	}
	return GasSetting{Value: new(big.Int).SetUint64(gas)}, nil
}

// ParseGasPrice parses a gas price in wei, "<n>gwei", or "auto"
func ParseGasPrice(s string) (GasSetting, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		s = DefaultGasPrice
	}
	if strings.EqualFold(s, Auto) {
		return GasSetting{Auto: true}, nil
	}
	price, err := ParseWei(s)
	if err != nil {
		return GasSetting{}, fmt.Errorf("invalid gas price %q: %w", s, err)
	}
	return GasSetting{Value: price}, nil
}

// ParseWei parses an amount given in wei, or with a gwei/ether suffix
func ParseWei(s string) (*big.Int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return new(big.Int), nil
	}

	unit := big.NewInt(params.Wei)
	switch {
	case strings.HasSuffix(s, "gwei"):
		unit = big.NewInt(params.GWei)
		s = strings.TrimSuffix(s, "gwei")
	case strings.HasSuffix(s, "ether"):
		unit = big.NewInt(params.Ether)
		s = strings.TrimSuffix(s, "ether")
	case strings.HasSuffix(s, "wei"):
		s = strings.TrimSuffix(s, "wei")
	}
	s = strings.TrimSpace(s)

	// Fractional amounts are allowed for unit suffixes, e.g. 1.5gwei
	amount, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("not a number")
	}
	if amount.Sign() < 0 {
		return nil, fmt.Errorf("must not be negative")
	}
	amount.Mul(amount, new(big.Rat).SetInt(unit))
	if !amount.IsInt() {
		return nil, fmt.Errorf("fractional wei")
	}
	return new(big.Int).Set(amount.Num()), nil
}

// FormatEther renders a wei amount in ether with up to 6 decimals
func FormatEther(wei *big.Int) string {
	if wei == nil {
		return "0"
	}
	f := new(big.Float).Quo(new(big.Float).SetInt(wei), big.NewFloat(params.Ether))
	s := f.Text('f', 6)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
