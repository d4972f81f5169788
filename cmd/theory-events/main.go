package main

import "github.com/bostontheory/events/internal/cli"

func main() {
	cli.Execute()
}
