package main

import "github.com/compactroute/engine/cmd/routesim/cmd"

func main() {
	cmd.Execute()
}
