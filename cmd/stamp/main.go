package main

import (
	"github.com/goliatone/go-stamp/cmd/stamp/commands"
)

func main() {
	commands.Execute()
}
