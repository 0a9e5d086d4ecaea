package main

import (
	"fmt"
	"log"
	"os"

	"github.com/logrusorgru/aurora"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/ebiym/geom2d/geom"
	"github.com/ebiym/geom2d/internal/judge"
)

// Replays the embedded AOJ CGL sample cases against the geometry
// library and reports pass/fail per case. Exits nonzero if any case
// fails, so it can gate a release the same way the online judge would.
var (
	epsFlag = kingpin.Flag("eps", "comparison tolerance for geometric predicates").
		Default("1e-10").Float64()
	problemFlag = kingpin.Flag("problem", "run only this problem id, e.g. CGL_4_A").
			String()
	verboseFlag = kingpin.Flag("verbose", "print got/want for every case, not just failures").
			Short('v').Bool()
)

func main() {
	kingpin.Parse()

	problems, err := judge.Load()
	if err != nil {
		log.Fatalf("loading cases: %v", err)
	}

	eps := geom.Eps(*epsFlag)
	failed := 0
	ran := 0
	for _, p := range problems {
		if *problemFlag != "" && p.ID != *problemFlag {
			continue
		}
		for _, r := range judge.RunProblem(p, eps) {
			ran++
			if r.Passed {
				fmt.Printf("%s %s case %d\n", aurora.Green("PASS"), r.Problem, r.Case)
				if *verboseFlag {
					fmt.Printf("  got:  %q\n", r.Got)
				}
				continue
			}
			failed++
			fmt.Printf("%s %s case %d\n", aurora.Red("FAIL"), r.Problem, r.Case)
			if r.Err != nil {
				fmt.Printf("  error: %v\n", r.Err)
				continue
			}
			fmt.Printf("  got:  %q\n  want: %q\n", r.Got, r.Want)
		}
	}

	if ran == 0 {
		log.Fatalf("no cases matched %q", *problemFlag)
	}
	fmt.Printf("%d cases, %d failed\n", ran, failed)
	if failed > 0 {
		os.Exit(1)
	}
}
