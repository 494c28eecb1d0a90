package main

import (
	"github.com/ribgsilva/encyclopedia/app/cmd/entries"
	"github.com/ribgsilva/encyclopedia/app/cmd/schema"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		help()
		return
	}
	switch os.Args[1] {
	case "schema":
		schema.Run(os.Args[2:])
	case "entries":
		entries.Run(os.Args[2:])
	default:
		help()
	}
}

func help() {
	println("Usage: cmd <group> <command> [options]")
	println()
	schema.ListCommands()
	println()
	entries.ListCommands()
}
