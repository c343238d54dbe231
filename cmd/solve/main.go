// Command solve runs one registered problem solver over stdin/stdout,
// exactly as the judge environment invokes a submission.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	"bojlab/internal/core"
	_ "bojlab/internal/solvers/pointsort"
	_ "bojlab/internal/solvers/ratio"
	_ "bojlab/internal/solvers/switchboard"
)

func main() {
	problem := flag.String("problem", "switchboard", "solver to run")
	list := flag.Bool("list", false, "list registered solvers and exit")
	flag.Parse()

	if *list {
		names := make([]string, 0, len(core.Solvers()))
		for name := range core.Solvers() {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Println(name)
		}
		return
	}

	factory, ok := core.Solvers()[*problem]
	if !ok {
		log.Fatalf("unknown solver %q", *problem)
	}

	solver := factory(nil)
	out := bufio.NewWriter(os.Stdout)
	if err := solver.Solve(os.Stdin, out); err != nil {
		log.Fatalf("%s: %v", solver.Name(), err)
	}
	if err := out.Flush(); err != nil {
		log.Fatalf("flush output: %v", err)
	}
}
