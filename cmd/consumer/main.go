package main

import "github.com/atlasledger/go-bank-recon/cmd/consumer/cmd"

func main() {
	cmd.Execute()
}
