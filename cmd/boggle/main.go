package main

import (
	"github.com/dkahl/bogglegame-go/internal/cli"
)

func main() {
	cli.Execute()
}
