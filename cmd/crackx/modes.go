// cmd/crackx/modes.go
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"crackx/internal/filter"
	"crackx/internal/variant"
)

// runFilter implements `crackx filter <file> [len=N] [has=CHARS]`.
func runFilter(args []string) int {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Missing filter arguments. Usage: crackx filter <file> [len=N] [has=CHARS]")
		return 2
	}

	length := -1
	contains := ""
	for _, arg := range args[1:] {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			fmt.Fprintf(os.Stderr, "Malformed filter argument: %s\n", arg)
			return 2
		}
		switch key {
		case "len":
			n, err := strconv.Atoi(value)
			if err != nil || n < 0 {
				fmt.Fprintf(os.Stderr, "Invalid length: %s\n", value)
				return 2
			}
			length = n
		case "has":
			contains = value
		default:
			fmt.Fprintf(os.Stderr, "No such argument '%s'\n", key)
			return 2
		}
	}

	f, err := os.Open(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Couldn't find input file: %s\n", args[0])
		return 1
	}
	defer f.Close()

	if err := filter.Apply(f, os.Stdout, filter.Build(length, contains)); err != nil {
		fmt.Fprintf(os.Stderr, "Filter failed: %v\n", err)
		return 1
	}
	return 0
}

// runReplace implements `crackx replace <file> <ab> [cd ...]`: for each
// input line, print every index-power-set substitution variant. Lines are
// independent; no deduplication happens across them.
func runReplace(args []string) int {
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "Missing substitution arguments. Usage: crackx replace <file> <ab> [cd ...]")
		return 2
	}

	subs, err := variant.ParseSubstitutions(args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 2
	}

	f, err := os.Open(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Couldn't find input file: %s\n", args[0])
		return 1
	}
	defer f.Close()

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		err := variant.ForEachSubstitution(line, subs, func(word string) error {
			_, werr := fmt.Fprintln(out, word)
			return werr
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Substitution failed: %v\n", err)
			return 1
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Couldn't read during substitution: %v\n", err)
		return 1
	}
	return 0
}
