package main

import "github.com/aalvaropc/kolovorot/internal/cli"

func main() {
	cli.Execute()
}
