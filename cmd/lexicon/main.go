package main

import (
	"github.com/mvp-joe/project-lexicon/internal/cli"
)

func main() {
	cli.Execute()
}
