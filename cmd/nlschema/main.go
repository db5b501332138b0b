package main

import "github.com/nlschema/nlschema/cmd/nlschema/cli"

func main() {
	cli.Execute()
}
