// Command asm10 assembles LCASM10 source files for the 10-bit-word teaching machine into object
// code, per spec.md.
package main

import (
	"context"
	"os"

	"asm10/internal/cli"
	"asm10/internal/cli/cmd"
)

func main() {
	commands := []cli.Command{
		cmd.Assembler(),
	}

	commander := cli.New(context.Background()).
		WithLogger(os.Stderr).
		WithCommands(commands).
		WithHelp(cmd.Help(commands))

	os.Exit(commander.Execute(os.Args[1:]))
}
