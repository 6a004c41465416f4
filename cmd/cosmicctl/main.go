package main

import "github.com/yanqian/cosmic-rhythm/internal/cli"

func main() {
	cli.Execute()
}
