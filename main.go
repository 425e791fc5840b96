package main

import "github.com/dataferry/dataferry/cmd"

func main() {
	cmd.Execute()
}
