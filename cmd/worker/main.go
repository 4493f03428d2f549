package main

import "github.com/atlasledger/go-bank-recon/cmd/worker/cmd"

func main() {
	cmd.Execute()
}
