package main

import "github.com/glopal/envswitch/cmd"

func main() {
	cmd.Execute()
}
