// checksheet verifies the page geometry of an exported PDF sheet: it prints
// each page's media box in points and millimetres so the print size can be
// checked before sending the file to a printer.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

const ptToMM = 25.4 / 72

func main() {
	pdfPath := flag.String("file", "", "Path to PDF sheet")
	flag.Parse()

	if *pdfPath == "" {
		fmt.Println("Please provide a PDF file path using -file flag")
		os.Exit(1)
	}

	fmt.Printf("Analyzing sheet: %s\n", *pdfPath)

	dims, err := api.PageDimsFile(*pdfPath)
	if err != nil {
		fmt.Printf("Error getting page dimensions: %v\n", err)
		os.Exit(1)
	}

	for i, dim := range dims {
		fmt.Printf("\nPage %d:\n", i+1)
		fmt.Printf("Dimensions (Width x Height): %.3f x %.3f points\n", dim.Width, dim.Height)
		fmt.Printf("                             %.1f x %.1f mm\n", dim.Width*ptToMM, dim.Height*ptToMM)
	}
}
