package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"masterchef-rewards/pkg/config"
	"masterchef-rewards/pkg/logger"

	"github.com/spf13/cobra"
)

var cfgFile string

// rootCmd 代表基础命令，没有子命令时直接调用
var rootCmd = &cobra.Command{
	Use:   "rewards-cli",
	Short: "MasterChef 奖励合约管理工具",
	Long: `通过 Safe 多签钱包向 MasterChef 奖励合约发起管理提案。
支持 trustAMMFactory / untrustAMMFactory / withdrawRewards / addRewards，
以及离线编码、解码 calldata 和查询奖励代币余额。`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(cfgFile); err != nil {
			return fmt.Errorf("加载配置失败: %w", err)
		}
		logger.Init(config.Global.App.Env)
		return nil
	},
}

// Execute 将所有子命令添加到根命令并设置标志
func Execute() {
	defer logger.Sync()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// 全局标志
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "配置文件路径 (默认 ./config.yaml 或 ./config/config.yaml)")
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
