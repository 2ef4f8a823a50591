// Command generate regenerates the derived source files of the interval
// package. Run it from the repository root:
//
//	go run ./internal/cmd/generate
package main

import (
	"log"

	"github.com/lagoonql/interval-toolbox-go/internal/generate"
)

func main() {
	log.Println("generating unit table...")
	if err := generate.GenerateUnits("interval"); err != nil {
		log.Fatal(err)
	}
	log.Println("done")
}
