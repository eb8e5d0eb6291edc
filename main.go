package main

import "github.com/mouse-blink/stamp/cmd"

func main() {
	cmd.Execute()
}
