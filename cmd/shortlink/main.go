package main

import (
	"shortlink/internal/cli"
)

func main() {
	cli.Execute()
}
