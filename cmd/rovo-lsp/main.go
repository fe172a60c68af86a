package main

import "rovo-lsp/internal/cli"

func main() {
	cli.Execute()
}
