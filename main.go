package main

import "github.com/diogo/openchat/internal/commands"

func main() {
	commands.Execute()
}
