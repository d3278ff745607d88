package main

import "github.com/mouse-blink/potential/cmd"

func main() {
	cmd.Execute()
}
