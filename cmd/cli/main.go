package main

import (
	"github.com/mtrunkat/namedrill/internal/cli"
)

func main() {
	cli.Execute()
}
