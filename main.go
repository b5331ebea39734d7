package main

import "github.com/NovaUNL/Supernova-sub001/cmd"

func main() {
	cmd.Execute()
}
