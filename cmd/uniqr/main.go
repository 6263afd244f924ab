package main

import "github.com/imonaar/uniqr/internal/cli"

func main() {
	cli.Execute()
}
