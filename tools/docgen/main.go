// Package main generates CLI reference documentation for the server and
// cpt command trees.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	servercmd "github.com/donaldgifford/card-price-tracker/cmd/card-price-tracker/cmd"
	cptcmd "github.com/donaldgifford/card-price-tracker/cmd/cpt/cmd"
)

func main() {
	output := flag.String("output", "docs/cli", "output directory for generated markdown")
	flag.Parse()

	trees := map[string]*cobra.Command{
		"card-price-tracker": servercmd.Root(),
		"cpt":                cptcmd.Root(),
	}

	for name, root := range trees {
		dir := filepath.Join(*output, name)
		if err := os.MkdirAll(dir, 0o750); err != nil {
			log.Fatalf("creating output directory: %v", err)
		}

		root.DisableAutoGenTag = true
		if err := doc.GenMarkdownTree(root, dir); err != nil {
			log.Fatalf("generating %s docs: %v", name, err)
		}
		fmt.Printf("%s CLI docs generated in %s/\n", name, dir)
	}
}
