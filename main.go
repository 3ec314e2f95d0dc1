package main

import (
	"os"

	"github.com/rnetx/judge/cmd/judge"
)

func main() {
	os.Exit(judge.Execute())
}
