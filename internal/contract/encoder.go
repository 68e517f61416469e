package contract

import (
	"fmt"
	"math/big"

	"masterchef-rewards/pkg/errno"
	"masterchef-rewards/pkg/units"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

var (
	ErrUnknownOperation = errno.UnknownOperation
	ErrTypeMismatch     = errno.TypeMismatch
)

// EncodeCall 生成合约调用的 calldata: 4 字节 selector + 参数的 ABI 编码
// 相同的 (descriptor, schema) 总是得到相同的字节
func EncodeCall(desc CallDescriptor, schema *abi.ABI) ([]byte, error) {
	method, err := lookup(desc.Op, schema)
	if err != nil {
		return nil, err
	}

	args := desc.args
	if len(args) != len(method.Inputs) {
		return nil, fmt.Errorf("%s expects %d arguments, got %d: %w",
			method.Sig, len(method.Inputs), len(args), ErrTypeMismatch)
	}

	coerced := make([]interface{}, len(args))
	for i, input := range method.Inputs {
		v, err := coerce(args[i], input.Type)
		if err != nil {
			return nil, fmt.Errorf("%s argument %d (%s %s): %v: %w",
				method.Sig, i, input.Type.String(), input.Name, err, ErrTypeMismatch)
		}
		coerced[i] = v
	}

	packed, err := method.Inputs.Pack(coerced...)
	if err != nil {
		return nil, fmt.Errorf("%s: %v: %w", method.Sig, err, ErrTypeMismatch)
	}

	data := make([]byte, 0, len(method.ID)+len(packed))
	data = append(data, method.ID...)
	return append(data, packed...), nil
}

// Selector returns the 4-byte function selector of op.
func Selector(op Operation, schema *abi.ABI) ([]byte, error) {
	method, err := lookup(op, schema)
	if err != nil {
		return nil, err
	}
	return append([]byte(nil), method.ID...), nil
}

// Signature returns the canonical signature, e.g. "withdrawRewards(uint256)".
func Signature(op Operation, schema *abi.ABI) (string, error) {
	method, err := lookup(op, schema)
	if err != nil {
		return "", err
	}
	return method.Sig, nil
}

// DecodeCall 反向解析 calldata，用于提交前人工核对
func DecodeCall(data []byte, schema *abi.ABI) (CallDescriptor, error) {
	if schema == nil || len(data) < 4 {
		return CallDescriptor{}, fmt.Errorf("calldata too short (%d bytes): %w", len(data), ErrUnknownOperation)
	}
	method, err := schema.MethodById(data[:4])
	if err != nil {
		return CallDescriptor{}, fmt.Errorf("selector %x: %w", data[:4], ErrUnknownOperation)
	}
	values, err := method.Inputs.Unpack(data[4:])
	if err != nil {
		return CallDescriptor{}, fmt.Errorf("%s: %v: %w", method.Sig, err, ErrTypeMismatch)
	}
	return NewCallDescriptor(Operation(method.Name), values...), nil
}

// DecodeUint256 unpacks a single uint256 return value of a view call.
func DecodeUint256(op Operation, schema *abi.ABI, output []byte) (*big.Int, error) {
	if _, err := lookup(op, schema); err != nil {
		return nil, err
	}
	values, err := schema.Unpack(string(op), output)
	if err != nil {
		return nil, fmt.Errorf("%s output: %v: %w", op, err, ErrTypeMismatch)
	}
	if len(values) != 1 {
		return nil, fmt.Errorf("%s returned %d values: %w", op, len(values), ErrTypeMismatch)
	}
	v, ok := values[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("%s returned %T: %w", op, values[0], ErrTypeMismatch)
	}
	return v, nil
}

func lookup(op Operation, schema *abi.ABI) (abi.Method, error) {
	if schema == nil {
		return abi.Method{}, fmt.Errorf("%s: no schema: %w", op, ErrUnknownOperation)
	}
	method, ok := schema.Methods[string(op)]
	if !ok {
		return abi.Method{}, fmt.Errorf("%q: %w", op, ErrUnknownOperation)
	}
	return method, nil
}

func coerce(v interface{}, t abi.Type) (interface{}, error) {
	switch t.T {
	case abi.AddressTy:
		return toAddress(v)
	case abi.UintTy:
		n, err := toBigInt(v)
		if err != nil {
			return nil, err
		}
		if n.Sign() < 0 {
			return nil, fmt.Errorf("negative value %s", n)
		}
		if n.BitLen() > t.Size {
			return nil, fmt.Errorf("value %s overflows uint%d", n, t.Size)
		}
		// 小位宽的 uint 需要 Go 原生类型，Pack 才能接受
		switch t.Size {
		case 8:
			return uint8(n.Uint64()), nil
		case 16:
			return uint16(n.Uint64()), nil
		case 32:
			return uint32(n.Uint64()), nil
		case 64:
			return n.Uint64(), nil
		}
		return n, nil
	default:
		return nil, fmt.Errorf("unsupported parameter type %s", t.String())
	}
}

func toAddress(v interface{}) (common.Address, error) {
	switch a := v.(type) {
	case common.Address:
		return a, nil
	case *common.Address:
		if a == nil {
			return common.Address{}, fmt.Errorf("nil address")
		}
		return *a, nil
	case string:
		if !common.IsHexAddress(a) {
			return common.Address{}, fmt.Errorf("%q is not a hex address", a)
		}
		return common.HexToAddress(a), nil
	default:
		return common.Address{}, fmt.Errorf("cannot use %T as address", v)
	}
}

func toBigInt(v interface{}) (*big.Int, error) {
	switch n := v.(type) {
	case *big.Int:
		if n == nil {
			return nil, fmt.Errorf("nil integer")
		}
		return new(big.Int).Set(n), nil
	case big.Int:
		return new(big.Int).Set(&n), nil
	case int:
		return big.NewInt(int64(n)), nil
	case int64:
		return big.NewInt(n), nil
	case uint:
		return new(big.Int).SetUint64(uint64(n)), nil
	case uint64:
		return new(big.Int).SetUint64(n), nil
	case uint32:
		return new(big.Int).SetUint64(uint64(n)), nil
	case string:
		parsed, err := units.ParseUint256(n)
		if err != nil {
			return nil, fmt.Errorf("%q is not a base-10 integer", n)
		}
		return parsed, nil
	default:
		return nil, fmt.Errorf("cannot use %T as integer", v)
	}
}
