package main

import "github.com/iceinvein/create-react-csr-app/cmd"

func main() {
	cmd.Execute()
}
