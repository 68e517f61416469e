package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"masterchef-rewards/internal/chain"
	"masterchef-rewards/internal/safe"
	"masterchef-rewards/internal/service"
	"masterchef-rewards/pkg/config"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// newProposer 按配置构造 Proposer；withReader 为 true 时连接 RPC 节点
func newProposer(ctx context.Context, withReader bool) (*service.Proposer, func(), error) {
	client := safe.NewHTTPClient(config.Global.Safe.ApiUrl, config.Global.Safe.SafeAddress)
	if !withReader {
		return service.NewProposer(client, nil), func() {}, nil
	}

	reader, eth, err := chain.Dial(ctx, config.Global.Chain.RpcUrl)
	if err != nil {
		return nil, nil, err
	}
	return service.NewProposer(client, reader), eth.Close, nil
}

// confirmPrompt 交互终端下提交前打印提案供核对 (Verify on Screen)，--yes 或非终端时跳过
func confirmPrompt(cmd *cobra.Command) service.ConfirmFunc {
	yes, _ := cmd.Flags().GetBool("yes")
	if yes || !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil
	}

	return func(call string, env safe.TxRequest) bool {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "\n================ 待提交提案 ================")
		fmt.Fprintf(out, "Safe:   %s\n", config.Global.Safe.SafeAddress)
		fmt.Fprintf(out, "Call:   %s\n", call)
		fmt.Fprintf(out, "To:     %s\n", env.To)
		fmt.Fprintf(out, "Value:  %s\n", env.Value)
		fmt.Fprintf(out, "Data:   %s\n", env.Data)
		fmt.Fprintln(out, "============================================")
		fmt.Fprint(out, "确认提交到 Safe? [y/N]: ")

		line, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		answer := strings.ToLower(strings.TrimSpace(line))
		return answer == "y" || answer == "yes"
	}
}
