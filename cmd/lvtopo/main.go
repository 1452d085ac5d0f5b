package main

import "github.com/katalvlaran/lvtopo/internal/cli"

func main() {
	cli.Execute()
}
