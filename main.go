package main

import "github.com/strumkit/fretfinder/cmd"

func main() {
	cmd.Execute()
}
