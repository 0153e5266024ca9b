package main

import "github.com/gnames/gnmolluscs/cmd"

func main() {
	cmd.Execute()
}
