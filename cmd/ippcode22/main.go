package main

import (
	"os"

	"github.com/mna/mainer"

	"ippcode22/internal/maincmd"
)

func main() {
	os.Exit(int(maincmd.Main(os.Args, mainer.CurrentStdio())))
}
