// Package judge replays the published sample cases of the AOJ CGL
// course against the geometry library. Each problem id maps to a solver
// that parses the literal sample input, runs the corresponding geometry
// routine, and prints in the judge's output format; the harness then
// diffs the result against the expected text within a tolerance.
package judge

import (
	_ "embed"
	"strconv"
	"strings"

	"github.com/ebiym/geom2d/geom"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed cases.yaml
var casesYAML []byte

// Case is one literal sample: raw input text and the expected output.
type Case struct {
	Input    string `yaml:"input"`
	Expected string `yaml:"expected"`
}

// Problem groups the samples of one judge problem.
type Problem struct {
	ID        string  `yaml:"id"`
	Name      string  `yaml:"name"`
	Digits    int     `yaml:"digits"`
	Tolerance float64 `yaml:"tolerance"` // 0 means the default
	Cases     []Case  `yaml:"cases"`
}

// DefaultTolerance is the comparison tolerance for numeric output
// tokens. It is much looser than geom.DefaultEps: it reflects the
// judge's accepted output error, not the predicate tie-break band.
const DefaultTolerance = 1e-6

// Load parses the embedded sample-case file.
func Load() ([]Problem, error) {
	var problems []Problem
	if err := yaml.Unmarshal(casesYAML, &problems); err != nil {
		return nil, errors.Wrap(err, "parsing embedded cases")
	}
	return problems, nil
}

// Result is the outcome of one sample case.
type Result struct {
	Problem string
	Case    int
	Got     string
	Want    string
	Passed  bool
	Err     error
}

// RunProblem runs every sample case of p with the given predicate
// tolerance.
func RunProblem(p Problem, eps geom.Eps) []Result {
	solver, ok := solvers[p.ID]
	results := make([]Result, 0, len(p.Cases))
	for i, c := range p.Cases {
		r := Result{Problem: p.ID, Case: i, Want: strings.TrimSpace(c.Expected)}
		if !ok {
			r.Err = errors.Errorf("no solver registered for %s", p.ID)
		} else {
			r.Got, r.Err = solve(solver, c.Input, p.Digits, eps)
		}
		tol := p.Tolerance
		if tol == 0 {
			tol = DefaultTolerance
		}
		r.Passed = r.Err == nil && outputsMatch(r.Got, r.Want, tol)
		results = append(results, r)
	}
	return results
}

// RunAll runs every case of every problem.
func RunAll(problems []Problem, eps geom.Eps) []Result {
	var results []Result
	for _, p := range problems {
		results = append(results, RunProblem(p, eps)...)
	}
	return results
}

// outputsMatch compares line by line, token by token. Tokens that both
// parse as numbers match within tol; anything else must match exactly.
// This absorbs formatting differences (the judge's samples round to
// varying digit counts) without hiding real errors.
func outputsMatch(got, want string, tol float64) bool {
	gotTokens := strings.Fields(got)
	wantTokens := strings.Fields(want)
	if len(gotTokens) != len(wantTokens) {
		return false
	}
	for i, w := range wantTokens {
		g := gotTokens[i]
		gf, gerr := strconv.ParseFloat(g, 64)
		wf, werr := strconv.ParseFloat(w, 64)
		if gerr == nil && werr == nil {
			if !geom.Eps(tol).Eq(gf, wf) {
				return false
			}
			continue
		}
		if g != w {
			return false
		}
	}
	return true
}
