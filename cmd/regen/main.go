package main

import "github.com/t14raptor/regen/internal/cli"

func main() {
	cli.Execute()
}
