package main

import "rewear/cmd/client/cmd"

func main() {
	cmd.Execute()
}
