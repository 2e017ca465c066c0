package main

import "github.com/mouse-blink/valdiff/cmd"

func main() {
	cmd.Execute()
}
