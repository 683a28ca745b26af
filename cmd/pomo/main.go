package main

import "github.com/pomo-dev/pomo/internal/cli"

func main() {
	cli.Execute()
}
