// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command analyzer reads lines from stdin, runs each one through a
// pipeline of named transform stages, and reports what the terminal
// stage produces.
package main

import (
	"fmt"
	"os"
	"strconv"

	"code.hybscloud.com/strmpipe"
	"code.hybscloud.com/strmpipe/plugins"
)

const usage = `Usage: analyzer <queue_size> <plugin1> <plugin2> ... <pluginN>

Arguments:
  queue_size    Maximum number of items in each stage's queue
  plugin1..N    Names of stages to load

Available stages:
  logger        - Logs all strings that pass through
  typewriter    - Simulates typewriter effect with delays
  uppercaser    - Converts strings to uppercase
  rotator       - Moves every character to the right. Last character moves to the beginning.
  flipper       - Reverses the order of characters
  expander      - Expands each character with spaces

Example:
  analyzer 20 uppercaser rotator logger
  echo 'hello' | analyzer 20 uppercaser rotator logger
  echo '<END>' | analyzer 20 uppercaser rotator logger
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdin))
}

func run(args []string, stdin *os.File) int {
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "at least one stage must be specified")
		fmt.Fprint(os.Stderr, usage)
		return 1
	}

	capacity, err := strconv.Atoi(args[0])
	if err != nil || capacity <= 0 {
		fmt.Fprintln(os.Stderr, "queue_size must be a positive integer")
		fmt.Fprint(os.Stderr, usage)
		return 1
	}

	specs := make([]pipeline.StageSpec, len(args)-1)
	for i, name := range args[1:] {
		transform, ok := plugins.Lookup(name)
		if !ok {
			fmt.Fprintf(os.Stderr, "unknown stage: %s\n", name)
			fmt.Fprint(os.Stderr, usage)
			return 1
		}
		specs[i] = pipeline.StageSpec{Name: name, Transform: transform}
	}

	p, err := pipeline.New(capacity, specs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build pipeline: %v\n", err)
		return 2
	}

	if err := p.Run(stdin); err != nil {
		fmt.Fprintf(os.Stderr, "pipeline error: %v\n", err)
	}

	fmt.Println("Pipeline shutdown complete")
	return 0
}
