package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/iburimskiy/waf-visualization/internal/export"
	"github.com/iburimskiy/waf-visualization/internal/gallery"
	"github.com/iburimskiy/waf-visualization/internal/viewer"
	"gopkg.in/src-d/go-billy.v4/osfs"
)

func main() {
	out := flag.String("out", "", "write every figure as PNG into this directory instead of opening a window")
	flag.Parse()

	if err := run(*out); err != nil {
		log.Fatalf("waf-visualization: %v", err)
	}
}

func run(out string) error {
	fmt.Println(gallery.Header)
	stages := gallery.Stages()

	if out == "" {
		return viewer.Run(stages, os.Stdout)
	}
	if err := os.MkdirAll(out, 0755); err != nil {
		return err
	}
	return gallery.Export(os.Stdout, stages, &export.Store{Filesystem: osfs.New(out)})
}
