package cmd

import (
	"fmt"

	"masterchef-rewards/pkg/config"
	"masterchef-rewards/pkg/errno"
	"masterchef-rewards/pkg/units"
	"masterchef-rewards/pkg/validator"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
)

var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "查询目标合约持有的奖励代币余额",
	RunE: func(cmd *cobra.Command, args []string) error {
		token, _ := cmd.Flags().GetString("token")
		owner, _ := cmd.Flags().GetString("owner")
		if token == "" {
			token = config.Global.Contract.RewardToken
		}
		if owner == "" {
			owner = config.Global.Contract.RewardsAddress
		}
		if !validator.IsValidAddress(token) {
			return fmt.Errorf("token %q: %w", token, errno.InvalidAddress)
		}
		if !validator.IsValidAddress(owner) {
			return fmt.Errorf("owner %q: %w", owner, errno.InvalidAddress)
		}

		proposer, closeFn, err := newProposer(cmd.Context(), true)
		if err != nil {
			return err
		}
		defer closeFn()

		balance, err := proposer.QueryBalance(cmd.Context(), common.HexToAddress(token), common.HexToAddress(owner))
		if err != nil {
			return err
		}

		decimals := config.Global.Contract.Decimals
		fmt.Fprintf(cmd.OutOrStdout(), "Token:    %s\n", validator.ToChecksumAddress(token))
		fmt.Fprintf(cmd.OutOrStdout(), "Owner:    %s\n", validator.ToChecksumAddress(owner))
		fmt.Fprintf(cmd.OutOrStdout(), "Balance:  %s (%s base units)\n", units.FromBaseUnits(balance, decimals), balance)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(balanceCmd)
	balanceCmd.Flags().String("token", "", "奖励代币地址 (默认 contract.reward_token)")
	balanceCmd.Flags().String("owner", "", "持有人地址 (默认 contract.rewards_address)")
}
