package main

import "isolation/cmd"

func main() {
	cmd.Execute()
}
