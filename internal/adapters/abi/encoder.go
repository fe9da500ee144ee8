package abi

import (
	"encoding/json"
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/trebuchet-org/sling/internal/domain"
	"github.com/trebuchet-org/sling/internal/usecase"
)

// Encoder turns textual constructor arguments into creation calldata
type Encoder struct{}

// NewEncoder creates a new constructor encoder
func NewEncoder() *Encoder {
	return &Encoder{}
}

// EncodeDeployment returns bytecode followed by the packed constructor arguments
func (e *Encoder) EncodeDeployment(artifact *domain.Artifact, args []string) ([]byte, error) {
	inputs := artifact.ABI.Constructor.Inputs
	if len(args) != len(inputs) {
		return nil, domain.ArgumentCountErr{
			Signature: artifact.ConstructorSignature(),
			Expected:  len(inputs),
			Got:       len(args),
		}
	}

	data := make([]byte, len(artifact.Bytecode))
	copy(data, artifact.Bytecode)
	if len(inputs) == 0 {
		return data, nil
	}

	values, err := ConvertArguments(inputs, args)
	if err != nil {
		return nil, err
	}

	// Pack with an empty name encodes the constructor inputs without a selector
	packed, err := artifact.ABI.Pack("", values...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack constructor arguments: %w", err)
	}

	return append(data, packed...), nil
}

// ConvertArguments converts each textual argument to the Go value its ABI type packs from
func ConvertArguments(inputs abi.Arguments, args []string) ([]interface{}, error) {
	values := make([]interface{}, len(inputs))
	for i, input := range inputs {
		v, err := convert(input.Type, args[i])
		if err != nil {
			name := input.Name
			if name == "" {
				name = fmt.Sprintf("#%d", i)
			}
			return nil, fmt.Errorf("argument %s (%s): %w", name, input.Type.String(), err)
		}
		values[i] = v
	}
	return values, nil
}

func convert(t abi.Type, raw string) (interface{}, error) {
	switch t.T {
	case abi.AddressTy:
		s := strings.TrimSpace(raw)
		if !common.IsHexAddress(s) {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidAddress, raw)
		}
		return common.HexToAddress(s), nil

	case abi.BoolTy:
		return strconv.ParseBool(strings.TrimSpace(raw))

	case abi.StringTy:
		return raw, nil

	case abi.BytesTy:
		return hexutil.Decode(strings.TrimSpace(raw))

	case abi.FixedBytesTy:
		b, err := hexutil.Decode(strings.TrimSpace(raw))
		if err != nil {
			return nil, err
		}
		if len(b) > t.Size {
			return nil, fmt.Errorf("%d bytes do not fit in bytes%d", len(b), t.Size)
		}
		// Right-padded like solidity bytesN literals
		arr := reflect.New(t.GetType()).Elem()
		reflect.Copy(arr, reflect.ValueOf(b))
		return arr.Interface(), nil

	case abi.IntTy, abi.UintTy:
		return convertInteger(t, strings.TrimSpace(raw))

	case abi.SliceTy, abi.ArrayTy:
		return convertList(t, raw)

	default:
		return nil, fmt.Errorf("unsupported constructor argument type %s", t.String())
	}
}

// convertInteger parses decimal or 0x-prefixed integers into the sized Go type
func convertInteger(t abi.Type, raw string) (interface{}, error) {
	n, ok := new(big.Int).SetString(raw, 0)
	if !ok {
		return nil, fmt.Errorf("invalid integer %q", raw)
	}

	if t.T == abi.UintTy {
		if n.Sign() < 0 {
			return nil, fmt.Errorf("negative value %s for unsigned type", raw)
		}
		if n.BitLen() > t.Size {
			return nil, fmt.Errorf("%s overflows uint%d", raw, t.Size)
		}
	} else {
		limit := new(big.Int).Lsh(big.NewInt(1), uint(t.Size-1))
		if n.Cmp(limit) >= 0 || n.Cmp(new(big.Int).Neg(limit)) < 0 {
			return nil, fmt.Errorf("%s overflows int%d", raw, t.Size)
		}
	}

	goType := t.GetType()
	if goType.Kind() == reflect.Ptr {
		return n, nil
	}
	v := reflect.New(goType).Elem()
	if t.T == abi.UintTy {
		v.SetUint(n.Uint64())
	} else {
		v.SetInt(n.Int64())
	}
	return v.Interface(), nil
}

// convertList parses a JSON array into a slice or fixed array of the element type
func convertList(t abi.Type, raw string) (interface{}, error) {
	var items []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("expected a JSON array: %v", err)
	}
	if t.T == abi.ArrayTy && len(items) != t.Size {
		return nil, fmt.Errorf("expected %d elements, got %d", t.Size, len(items))
	}

	var list reflect.Value
	if t.T == abi.ArrayTy {
		list = reflect.New(t.GetType()).Elem()
	} else {
		list = reflect.MakeSlice(t.GetType(), len(items), len(items))
	}

	for i, item := range items {
		// Elements are either JSON strings or bare literals such as numbers and booleans
		var s string
		if err := json.Unmarshal(item, &s); err != nil {
			s = string(item)
		}
		v, err := convert(*t.Elem, s)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		list.Index(i).Set(reflect.ValueOf(v))
	}
	return list.Interface(), nil
}

// Ensure the encoder implements the interface
var _ usecase.DeploymentEncoder = (*Encoder)(nil)
