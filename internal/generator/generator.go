/*
Package generator is a generator for the Infra noncharacter table.

The WHATWG Infra Standard defines the noncharacter set as the arena
U+FDD0..U+FDEF plus the last two code points of each of the 17 Unicode
planes (https://infra.spec.whatwg.org/#noncharacter). The set is fixed
by Unicode and needs no companion data file; this generator derives it
programmatically and emits a range-table source file.

Usage

The generator has just one option, a "verbose" flag.

   generator [-v]

This creates a file "noncharacters.go" in the current directory. It is
designed to be called from the repository root.

License

Governed by a 3-Clause BSD license. License file may be found in the
root folder of this module.

Copyright (c) 2024-26, the whatwg-infra authors
*/
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/emirpasic/gods/lists/arraylist"
)

var logger = log.New(os.Stderr, "noncharacter generator: ", log.LstdFlags)

// flag: verbose output ?
var verbose bool

const planes = 17

// Collect the noncharacter code points in standard order: the
// U+FDD0..U+FDEF arena first, then the plane-boundary pairs.
func collectNoncharacters() *arraylist.List {
	defer timeTrack(time.Now(), "collecting noncharacters")
	list := arraylist.New()
	for r := rune(0xFDD0); r <= 0xFDEF; r++ {
		list.Add(r)
	}
	for plane := 0; plane < planes; plane++ {
		list.Add(rune(plane<<16 | 0xFFFE))
		list.Add(rune(plane<<16 | 0xFFFF))
	}
	return list
}

var header = `package infra

// This file has been generated by internal/generator -- you probably should NOT EDIT IT !
//
// BSD License, Copyright (c) 2024-26, the whatwg-infra authors

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// Range table for the Infra Standard's noncharacter set.
// Will be initialized by setupNoncharacters().
// Clients check membership through IsNoncharacter.
var noncharacters *unicode.RangeTable
`

func generateTable(w *bufio.Writer, list *arraylist.List) {
	defer timeTrack(time.Now(), "generate range table")
	w.WriteString("\nfunc setupNoncharacters() {\n")
	w.WriteString("\tnoncharacters = rangetable.New(\n")
	w.WriteString("\t\t// Arena U+FDD0..U+FDEF\n")
	it := list.Iterator()
	col := 0
	for it.Next() {
		r := it.Value().(rune)
		if r == 0xFFFE {
			if col != 0 {
				w.WriteString("\n")
			}
			w.WriteString("\t\t// Last two code points of each of the 17 planes\n")
			col = 0
		}
		if col == 0 {
			w.WriteString("\t\t")
		} else {
			w.WriteString(" ")
		}
		w.WriteString(fmt.Sprintf("%+q,", r))
		col++
		// the arena fits 8 literals per line, the wider plane-boundary
		// escapes only 6
		if (r < 0xFFFE && col == 8) || (r >= 0xFFFE && col == 6) {
			w.WriteString("\n")
			col = 0
		}
	}
	if col != 0 {
		w.WriteString("\n")
	}
	w.WriteString("\t)\n}\n")
}

func main() {
	doVerbose := flag.Bool("v", false, "verbose output mode")
	flag.Parse()
	verbose = *doVerbose
	list := collectNoncharacters()
	if verbose {
		logger.Printf("collected %d noncharacters\n", list.Size())
	}
	f, ioerr := os.Create("noncharacters.go")
	checkFatal(ioerr)
	defer f.Close()
	w := bufio.NewWriter(f)
	w.WriteString(header)
	generateTable(w, list)
	w.Flush()
}

// --- Util -------------------------------------------------------------

// Little helper for testing
func timeTrack(start time.Time, name string) {
	if verbose {
		elapsed := time.Since(start)
		logger.Printf("timing: %s took %s\n", name, elapsed)
	}
}

func checkFatal(err error) {
	_, file, line, _ := runtime.Caller(1)
	if err != nil {
		logger.Fatalln(":", file, ":", line, "-", err)
	}
}
