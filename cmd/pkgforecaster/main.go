package main

import "pkgforecaster/internal/cli"

func main() {
	cli.Execute()
}
