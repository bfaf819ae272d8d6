package main

import (
	"fmt"
	"os"
	"runtime"

	"rollup/core"
	"rollup/extent"
)

const inputPath = "measurements.txt"

func main() {
	ext, err := extent.Map(inputPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer ext.Close()

	summary := core.Reduce(ext.Bytes(), core.ChunksPerCore*runtime.NumCPU())
	fmt.Println(summary)
}
