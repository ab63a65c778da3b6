package main

import "github.com/mouse-blink/scalist/cmd"

func main() {
	cmd.Execute()
}
