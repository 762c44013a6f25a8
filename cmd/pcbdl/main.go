package main

import "github.com/Infinite-Blue-1042/pcbdl/cmd/pcbdl/cmd"

func main() {
	cmd.Execute()
}
