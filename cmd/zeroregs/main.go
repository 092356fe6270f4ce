package main

import "github.com/OpenTraceLab/zeroregs/cmd/zeroregs/cmd"

func main() {
	cmd.Execute()
}
