package main

import "masterchef-rewards/cmd/rewards-cli/cmd"

func main() {
	cmd.Execute()
}
