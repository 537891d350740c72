package main

import "github.com/orbital-labs/acgen/cmd"

func main() {
	cmd.Execute()
}
