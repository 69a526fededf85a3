package main

import (
	"event-map/cmd"
	_ "go.uber.org/automaxprocs"
)

func main() {
	cmd.Start()
}
