package main

import "github.com/ValentinKolb/dWrite/cmd"

func main() {
	cmd.Execute()
}
