package main

import "github.com/ripkitten-co/idpcodec/cmd/idpcodec/cmd"

func main() {
	cmd.Execute()
}
