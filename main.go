package main

import "github.com/nitinsinghh27/TDS-PR1/cmd"

func main() {
	cmd.Execute()
}
