package main

import (
	"log"

	"github.com/sjzar/mcpcalc/cmd/mcpcalc"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	mcpcalc.Execute()
}
