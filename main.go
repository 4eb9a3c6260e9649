package main

import "lab-inventory/cmd"

func main() {
	cmd.Execute()
}
