package main

import "github.com/iksnae/cost-advisor/cmd"

func main() {
	cmd.Execute()
}
