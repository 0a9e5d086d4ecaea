package judge

import (
	"testing"

	"github.com/ebiym/geom2d/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	problems, err := Load()
	require.NoError(t, err)
	require.NotEmpty(t, problems)

	seen := map[string]bool{}
	for _, p := range problems {
		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.Cases, "%s has no cases", p.ID)
		assert.False(t, seen[p.ID], "%s listed twice", p.ID)
		seen[p.ID] = true

		_, ok := solvers[p.ID]
		assert.True(t, ok, "%s has no solver", p.ID)
	}
}

func TestRunAllSamplesPass(t *testing.T) {
	problems, err := Load()
	require.NoError(t, err)

	for _, r := range RunAll(problems, geom.DefaultEps) {
		require.NoError(t, r.Err, "%s case %d", r.Problem, r.Case)
		assert.True(t, r.Passed, "%s case %d:\ngot:\n%s\nwant:\n%s",
			r.Problem, r.Case, r.Got, r.Want)
	}
}

func TestRunProblemUnknownSolver(t *testing.T) {
	p := Problem{ID: "CGL_9_Z", Cases: []Case{{Input: "0", Expected: "0"}}}
	results := RunProblem(p, geom.DefaultEps)
	require.Len(t, results, 1)
	assert.Error(t, results[0].Err)
	assert.False(t, results[0].Passed)
}

func TestSolveReportsBadInput(t *testing.T) {
	// Underrunning the token stream must surface as an error, not a
	// panic escaping the harness.
	_, err := solve(solvers["CGL_2_B"], "2\n0 0 1 0 0 1 1 1", 0, geom.DefaultEps)
	assert.Error(t, err)
}

func TestFormatFloat(t *testing.T) {
	assert.Equal(t, "1.5000000000", FormatFloat(1.5, 10))
	assert.Equal(t, "2.0", FormatFloat(2, 1))
	assert.Equal(t, "3", FormatFloat(3.2, 0))
	// A negative residue below the printed precision must not keep
	// its sign.
	assert.Equal(t, "0.0000000000", FormatFloat(-1e-11, 10))
}

func TestOutputsMatch(t *testing.T) {
	assert.True(t, outputsMatch("1.0000000000", "1", 1e-6))
	assert.True(t, outputsMatch("1.4142135623", "1.4142135624", 1e-6))
	assert.False(t, outputsMatch("1.01", "1.0", 1e-6))
	assert.False(t, outputsMatch("1 2", "1", 1e-6))
	assert.True(t, outputsMatch("ON_SEGMENT", "ON_SEGMENT", 1e-6))
	assert.False(t, outputsMatch("CLOCKWISE", "ON_SEGMENT", 1e-6))
}
