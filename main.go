package main

import "github.com/bosshoggett/concord-cli/cmd"

func main() {
	cmd.Execute()
}
