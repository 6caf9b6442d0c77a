package main

import "github.com/rnwolfe/habit/cmd"

func main() {
	cmd.Execute()
}
