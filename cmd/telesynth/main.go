package main

import "github.com/telesynth/telesynth-cli/internal/cli"

func main() {
	cli.Execute()
}
