package main

import "github.com/mindsweep/mindsweep/cmd"

func main() {
	cmd.Execute()
}
