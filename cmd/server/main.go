package main

import "futuremail/cmd/server/cmd"

func main() {
	cmd.Execute()
}
