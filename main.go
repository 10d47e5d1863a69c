package main

import "github.com/iCodeForBananas/SimpleGuitarTools/cmd"

func main() {
	cmd.Execute()
}
