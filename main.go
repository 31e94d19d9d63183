package main

import "telcodegen/cmd"

func main() {
	cmd.Execute()
}
