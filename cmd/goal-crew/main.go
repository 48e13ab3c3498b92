// Package main is the entry point for the goal-crew CLI
package main

import (
	"github.com/betteros/goal-crew/internal/cli"
)

func main() {
	cli.Execute()
}
