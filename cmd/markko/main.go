// Package main is the entry point for the markko CLI client.
package main

import (
	"github.com/markkohq/markko-go/cmd/markko/cmd"
)

func main() {
	cmd.Execute()
}
