//go:build !wasm

// Command ormc generates liteorm schema declarations for the structs found
// in model.go and models.go files under the current directory.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/pflag"
	"github.com/tinywasm/liteorm"
)

func main() {
	root := pflag.StringP("root", "r", ".", "directory to scan for model.go/models.go files")
	pflag.Parse()

	o := liteorm.NewOrmc()
	o.SetRootDir(*root)
	o.SetLog(func(messages ...any) {
		fmt.Fprintln(os.Stderr, messages...)
	})
	if err := o.Run(); err != nil {
		log.Fatalf("ormc: %v", err)
	}
}
