package contract

import (
	"bytes"
	"embed"
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// SchemaVersion 标识内嵌 ABI 的版本，升级合约接口时同步修改
const SchemaVersion = "masterchef-v1"

//go:embed abi/*.json
var abiFiles embed.FS

var (
	loadOnce   sync.Once
	masterChef *abi.ABI
	erc20      *abi.ABI
	loadErr    error
)

func load() {
	masterChef, loadErr = parse("abi/MasterChef.json")
	if loadErr != nil {
		return
	}
	erc20, loadErr = parse("abi/ERC20.json")
}

func parse(name string) (*abi.ABI, error) {
	raw, err := abiFiles.ReadFile(name)
	if err != nil {
		return nil, err
	}
	parsed, err := abi.JSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	return &parsed, nil
}

// MasterChefSchema returns the parsed rewards-contract interface.
// The ABI is embedded at build time, so a parse failure is a programming error and panics.
func MasterChefSchema() *abi.ABI {
	loadOnce.Do(load)
	if loadErr != nil {
		panic(loadErr)
	}
	return masterChef
}

// ERC20Schema returns the parsed ERC-20 subset used for balance reads.
func ERC20Schema() *abi.ABI {
	loadOnce.Do(load)
	if loadErr != nil {
		panic(loadErr)
	}
	return erc20
}
