package main

import (
	"os"

	"github.com/jacoelho/take/internal/config"
	"github.com/jacoelho/take/internal/execute"
)

func main() {
	exitCode := run()
	os.Exit(exitCode)
}

func run() int {
	cfg, exitResult := config.Parse(os.Args)
	if exitResult != nil {
		exitResult.Print()
		return exitResult.ExitCode
	}

	result := execute.Run(cfg, os.Stdin)
	result.Print()
	return result.ExitCode
}
