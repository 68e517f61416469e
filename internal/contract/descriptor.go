package contract

import (
	"fmt"
	"math/big"
	"strings"

	"masterchef-rewards/pkg/errno"

	"github.com/ethereum/go-ethereum/common"
)

// Operation 合约函数名，与 ABI 中的 name 一一对应
type Operation string

const (
	OpTrustAMMFactory   Operation = "trustAMMFactory"
	OpUntrustAMMFactory Operation = "untrustAMMFactory"
	OpWithdrawRewards   Operation = "withdrawRewards"
	OpAddRewards        Operation = "addRewards"

	// ERC-20 只读
	OpBalanceOf Operation = "balanceOf"
)

// Operations lists the MasterChef write operations in display order.
func Operations() []Operation {
	return []Operation{OpTrustAMMFactory, OpUntrustAMMFactory, OpWithdrawRewards, OpAddRewards}
}

// ParseOperation accepts the exact function name, case-insensitively.
func ParseOperation(name string) (Operation, error) {
	for _, op := range append(Operations(), OpBalanceOf) {
		if strings.EqualFold(string(op), strings.TrimSpace(name)) {
			return op, nil
		}
	}
	return "", fmt.Errorf("%q: %w", name, errno.UnknownOperation)
}

// CallDescriptor is one logical contract invocation: the function and its ordered arguments.
type CallDescriptor struct {
	Op   Operation
	args []interface{}
}

// NewCallDescriptor copies args so the descriptor cannot be changed after construction.
func NewCallDescriptor(op Operation, args ...interface{}) CallDescriptor {
	return CallDescriptor{Op: op, args: append([]interface{}(nil), args...)}
}

// Args returns a copy of the ordered arguments.
func (d CallDescriptor) Args() []interface{} {
	return append([]interface{}(nil), d.args...)
}

func (d CallDescriptor) String() string {
	parts := make([]string, len(d.args))
	for i, a := range d.args {
		switch v := a.(type) {
		case common.Address:
			parts[i] = v.Hex()
		case *big.Int:
			parts[i] = v.String()
		default:
			parts[i] = fmt.Sprint(v)
		}
	}
	return fmt.Sprintf("%s(%s)", d.Op, strings.Join(parts, ", "))
}

func TrustAMMFactory(ammFactory common.Address) CallDescriptor {
	return NewCallDescriptor(OpTrustAMMFactory, ammFactory)
}

func UntrustAMMFactory(ammFactory common.Address) CallDescriptor {
	return NewCallDescriptor(OpUntrustAMMFactory, ammFactory)
}

func WithdrawRewards(amount *big.Int) CallDescriptor {
	return NewCallDescriptor(OpWithdrawRewards, new(big.Int).Set(amount))
}

func AddRewards(marketFactory common.Address, rewardsPerMarket, rewardDaysPerMarket, earlyDepositBonusRewards *big.Int) CallDescriptor {
	return NewCallDescriptor(OpAddRewards,
		marketFactory,
		new(big.Int).Set(rewardsPerMarket),
		new(big.Int).Set(rewardDaysPerMarket),
		new(big.Int).Set(earlyDepositBonusRewards),
	)
}

func BalanceOf(owner common.Address) CallDescriptor {
	return NewCallDescriptor(OpBalanceOf, owner)
}
