package main

import "sensorlist/cmd/client/cmd"

func main() {
	cmd.Execute()
}
