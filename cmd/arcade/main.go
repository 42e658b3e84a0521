package main

import (
	"github.com/andrescamacho/arcade-go/internal/adapters/cli"
)

func main() {
	cli.Execute()
}
