package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"pkt.systems/mdlex"
)

func main() {
	root := "testdata"
	var paths []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(path, ".md") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		fatalf("walk %s: %v", root, err)
	}
	if len(paths) == 0 {
		fatalf("no markdown files found under %s", root)
	}
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			fatalf("read %s: %v", path, err)
		}
		toks, err := mdlex.TokenizeReader(f, mdlex.WithValidation(true), mdlex.WithFrontMatter(true))
		_ = f.Close()
		if err != nil {
			fatalf("tokenize %s: %v", path, err)
		}
		var out bytes.Buffer
		err = mdlex.Format(mdlex.FormatRequest{
			Writer:  &out,
			Tokens:  toks,
			Options: []mdlex.FormatOption{mdlex.WithPositions(true)},
		})
		if err != nil {
			fatalf("format %s: %v", path, err)
		}
		dst := goldenPath(root, path)
		if err := os.WriteFile(dst, out.Bytes(), 0o644); err != nil {
			fatalf("write %s: %v", dst, err)
		}
		fmt.Fprintf(os.Stdout, "wrote %s\n", dst)
	}
}

func goldenPath(root string, mdPath string) string {
	rel, err := filepath.Rel(root, mdPath)
	if err != nil {
		rel = mdPath
	}
	name := strings.TrimSuffix(rel, ".md")
	name = strings.ReplaceAll(filepath.ToSlash(name), "/", "__")
	return filepath.Join(root, name+".golden")
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
