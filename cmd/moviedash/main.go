package main

import "moviedash/internal/cli"

func main() {
	cli.Execute()
}
