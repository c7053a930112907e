package main

import (
	"github.com/gencode-dev/gocodon/cmd"
)

func main() {
	cmd.Execute()
}
