package main

import "mongouri/cmd"

func main() {
	cmd.Execute()
}
