package main

import "github.com/mouse-blink/alsgen/cmd"

func main() {
	cmd.Execute()
}
