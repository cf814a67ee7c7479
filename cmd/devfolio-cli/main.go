package main

import "devfolio/cmd/devfolio-cli/cmd"

func main() {
	cmd.Execute()
}
