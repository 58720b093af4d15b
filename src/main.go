package main

import "github.com/nvmw/nvmw/src/cmd"

func main() {
	cmd.Execute()
}
