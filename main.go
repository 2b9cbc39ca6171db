package main

import "github.com/douhashi/issuelink/cmd"

func main() {
	cmd.Execute()
}
