package main

import "wingetup/internal/cli"

func main() {
	cli.Execute()
}
