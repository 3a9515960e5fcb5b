package main

import "github.com/they4kman/sweepodds/cmd"

func main() {
	cmd.Execute()
}
