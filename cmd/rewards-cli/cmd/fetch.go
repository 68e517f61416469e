package cmd

import (
	"masterchef-rewards/internal/service"

	"github.com/spf13/cobra"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch <safeTxHash>",
	Short: "查询 Safe 交易记录",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		proposer, closeFn, err := newProposer(cmd.Context(), false)
		if err != nil {
			return err
		}
		defer closeFn()

		record, err := service.NewRecordService(proposer, nil, 0).Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), record)
	},
}

func init() {
	rootCmd.AddCommand(fetchCmd)
}
