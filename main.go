package main

import "github.com/papapumpkin/bulletin/cmd"

func main() {
	cmd.Execute()
}
