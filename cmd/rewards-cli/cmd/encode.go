package cmd

import (
	"fmt"
	"strings"

	"masterchef-rewards/internal/contract"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"
)

var encodeCmd = &cobra.Command{
	Use:   "encode <operation> [args...]",
	Short: "离线编码 MasterChef calldata",
	Long: `按内置 ABI 编码调用数据，不发起任何网络请求。
uint256 参数使用最小单位整数，例如:
  rewards-cli encode withdrawRewards 1000000000000000000`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		op, err := contract.ParseOperation(args[0])
		if err != nil {
			return err
		}
		schema := contract.MasterChefSchema()

		callArgs := make([]interface{}, 0, len(args)-1)
		for _, a := range args[1:] {
			callArgs = append(callArgs, a)
		}
		desc := contract.NewCallDescriptor(op, callArgs...)
		data, err := contract.EncodeCall(desc, schema)
		if err != nil {
			return err
		}
		sig, _ := contract.Signature(op, schema)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Call:       %s\n", desc)
		fmt.Fprintf(out, "Signature:  %s\n", sig)
		fmt.Fprintf(out, "Selector:   %s\n", hexutil.Encode(data[:4]))
		fmt.Fprintf(out, "Data:       %s\n", hexutil.Encode(data))
		return nil
	},
}

var decodeCmd = &cobra.Command{
	Use:   "decode <calldata>",
	Short: "解码 MasterChef calldata",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.TrimSpace(args[0])
		if !strings.HasPrefix(text, "0x") && !strings.HasPrefix(text, "0X") {
			text = "0x" + text
		}
		data, err := hexutil.Decode(text)
		if err != nil {
			return fmt.Errorf("calldata 不是合法的 hex: %w", err)
		}

		desc, err := contract.DecodeCall(data, contract.MasterChefSchema())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), desc.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
}
