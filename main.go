package main

import "match-sync/cmd"

func main() {
	cmd.Execute()
}
