package main

import "github.com/data4safety/d4s/cmd"

func main() {
	cmd.Execute()
}
