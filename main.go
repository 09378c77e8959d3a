package main

import "github.com/George-Madeley/Tools/cmd"

func main() {
	cmd.Execute()
}
