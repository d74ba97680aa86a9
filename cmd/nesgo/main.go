// Command nesgo runs a single iNES ROM in a window.
package main

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/Danishk2445/nes-emulator/host"
)

func main() {
	if len(os.Args) != 2 {
		log.Fatalf("usage: %s <rom.nes>", filepath.Base(os.Args[0]))
	}

	path := os.Args[1]
	title := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	if err := host.Run(path, title); err != nil {
		log.Fatalln(err)
	}
}
