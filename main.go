package main

import (
	_ "go.uber.org/automaxprocs"
	"kerala-tours/cmd"
)

func main() {
	cmd.Start()
}
