package main

import "supplyline/cmd/supplyline/commands"

func main() {
	commands.Execute()
}
