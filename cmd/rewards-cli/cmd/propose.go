package cmd

import (
	"fmt"

	"masterchef-rewards/internal/service"
	"masterchef-rewards/pkg/config"

	"github.com/spf13/cobra"
)

var proposeCmd = &cobra.Command{
	Use:   "propose",
	Short: "向 Safe 提交 MasterChef 管理提案",
	Long: `每条命令只提交一次提案，成功后打印 safeTxHash 和 Safe 返回的交易记录。
目标合约默认取 contract.rewards_address，可用 --target 覆盖。`,
}

var trustCmd = &cobra.Command{
	Use:   "trust <ammFactory>",
	Short: "trustAMMFactory(address)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withForm(cmd, false, func(form *service.Form) (*service.Result, error) {
			return form.TrustAMMFactory(cmd.Context(), args[0])
		})
	},
}

var untrustCmd = &cobra.Command{
	Use:   "untrust <ammFactory>",
	Short: "untrustAMMFactory(address)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withForm(cmd, false, func(form *service.Form) (*service.Result, error) {
			return form.UntrustAMMFactory(cmd.Context(), args[0])
		})
	},
}

var withdrawCmd = &cobra.Command{
	Use:   "withdraw [amount]",
	Short: "withdrawRewards(uint256)",
	Long: `amount 为代币数量 (按 decimals 换算)。
amount_source=balance 时忽略 amount，先查询目标合约的奖励代币余额。`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount := ""
		if len(args) == 1 {
			amount = args[0]
		}
		formCfg, err := service.FormConfigFrom(config.Global.Contract)
		if err != nil {
			return err
		}
		balanceMode := formCfg.AmountSource == service.AmountBalance
		if !balanceMode && amount == "" {
			return fmt.Errorf("amount_source=manual 时必须提供 amount")
		}
		return withForm(cmd, balanceMode, func(form *service.Form) (*service.Result, error) {
			return form.WithdrawRewards(cmd.Context(), amount)
		})
	},
}

var addCmd = &cobra.Command{
	Use:   "add <marketFactory> <rewardsPerMarket> <rewardDaysPerMarket> <earlyDepositBonusRewards>",
	Short: "addRewards(address,uint256,uint256,uint256)",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withForm(cmd, false, func(form *service.Form) (*service.Result, error) {
			return form.AddRewards(cmd.Context(), service.AddRewardsInput{
				MarketFactory:            args[0],
				RewardsPerMarket:         args[1],
				RewardDaysPerMarket:      args[2],
				EarlyDepositBonusRewards: args[3],
			})
		})
	},
}

func withForm(cmd *cobra.Command, withReader bool, action func(*service.Form) (*service.Result, error)) error {
	formCfg, err := service.FormConfigFrom(config.Global.Contract)
	if err != nil {
		return err
	}

	target, _ := cmd.Flags().GetString("target")
	if target == "" {
		target = config.Global.Contract.RewardsAddress
	}

	proposer, closeFn, err := newProposer(cmd.Context(), withReader)
	if err != nil {
		return err
	}
	defer closeFn()

	form := service.NewForm(proposer.WithConfirm(confirmPrompt(cmd)), formCfg, target)
	if form.Mode() != service.ModeReady {
		return fmt.Errorf("目标合约 %q 不是合法的非零地址", target)
	}

	result, err := action(form)
	if result != nil {
		if perr := printJSON(cmd.OutOrStdout(), result); perr != nil {
			return perr
		}
	}
	return err
}

func init() {
	rootCmd.AddCommand(proposeCmd)
	proposeCmd.AddCommand(trustCmd, untrustCmd, withdrawCmd, addCmd)
	proposeCmd.PersistentFlags().String("target", "", "MasterChef 合约地址 (默认 contract.rewards_address)")
	proposeCmd.PersistentFlags().BoolP("yes", "y", false, "跳过提交前确认")
}
