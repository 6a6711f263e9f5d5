package main

import (
	"log"

	cmd "github.com/musemeta/bqshell/pkg/cmd"
	"github.com/spf13/cobra/doc"
)

func main() {
	err := doc.GenMarkdownTree(cmd.RootCmd, "./docs")
	if err != nil {
		log.Fatal(err)
	}
	err = doc.GenReSTTree(cmd.RootCmd, "./docs")
	if err != nil {
		log.Fatal(err)
	}
}
