package threshold_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/percolate/percolation"
	"github.com/katalvlaran/percolate/threshold"
)

// scripted replays vals in a loop, reduced modulo the requested bound.
type scripted struct {
	vals []int
	i    int
}

func (s *scripted) Intn(n int) int {
	v := s.vals[s.i%len(s.vals)] % n
	s.i++
	return v
}

// outOfRange always returns n, one past the valid range.
type outOfRange struct{}

func (outOfRange) Intn(n int) int { return n }

// TestNew_InvalidArguments covers non-positive sizes and trial counts.
func TestNew_InvalidArguments(t *testing.T) {
	cases := []struct {
		name      string
		n, trials int
	}{
		{"zero n", 0, 10},
		{"negative n", -2, 10},
		{"zero trials", 5, 0},
		{"negative trials", 5, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e, err := threshold.New(tc.n, tc.trials, threshold.WithSeed(1))
			require.ErrorIs(t, err, threshold.ErrInvalidArgument)
			assert.True(t, strings.HasPrefix(err.Error(), "threshold: "), err.Error())
			assert.Nil(t, e)
		})
	}
}

// TestNew_GridTooLarge checks that a size whose n² overflows int is reported
// through both sentinels instead of panicking inside a trial.
func TestNew_GridTooLarge(t *testing.T) {
	for _, workers := range []int{1, 3} {
		e, err := threshold.New(math.MaxInt, 2, threshold.WithSeed(1), threshold.WithWorkers(workers))
		require.ErrorIs(t, err, threshold.ErrInvalidArgument, "workers=%d", workers)
		require.ErrorIs(t, err, percolation.ErrInvalidArgument, "workers=%d", workers)
		assert.Nil(t, e)
	}
}

// TestSharedSourceRejectsWorkers ensures one caller-owned source is never
// shared across goroutines.
func TestSharedSourceRejectsWorkers(t *testing.T) {
	_, err := threshold.New(3, 4,
		threshold.WithSource(&scripted{vals: []int{0}}),
		threshold.WithWorkers(2),
	)
	require.ErrorIs(t, err, threshold.ErrInvalidArgument)
}

// TestOptionPanics checks that option constructors reject meaningless input.
func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { threshold.WithSource(nil) })
	assert.Panics(t, func() { threshold.WithWorkers(0) })
	assert.Panics(t, func() { threshold.WithLogger(nil) })
}

// TestSingleTrialStdDevIsNaN runs n=2 with one trial. The scripted source
// opens (1,1) then (2,1), so the sample is 2/4. With one sample the
// standard deviation is undefined and reported as NaN, and the confidence
// bounds inherit it.
func TestSingleTrialStdDevIsNaN(t *testing.T) {
	e, err := threshold.New(2, 1, threshold.WithSource(&scripted{vals: []int{0, 0, 1, 0}}))
	require.NoError(t, err)

	want := threshold.Summary{
		N:            2,
		Trials:       1,
		Mean:         0.5,
		StdDev:       math.NaN(),
		ConfidenceLo: math.NaN(),
		ConfidenceHi: math.NaN(),
	}
	if diff := cmp.Diff(want, e.Summary(), cmpopts.EquateNaNs()); diff != "" {
		t.Errorf("Summary() mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, math.IsNaN(e.StdDev()))
	assert.True(t, math.IsNaN(e.ConfidenceLo()))
	assert.True(t, math.IsNaN(e.ConfidenceHi()))
	assert.Equal(t, []float64{0.5}, e.Samples())
}

// TestSingleSiteGrid: every n=1 trial percolates after one open, so all
// samples are 1 and the spread is zero.
func TestSingleSiteGrid(t *testing.T) {
	e, err := threshold.New(1, 5, threshold.WithSeed(3))
	require.NoError(t, err)

	want := threshold.Summary{N: 1, Trials: 5, Mean: 1, StdDev: 0, ConfidenceLo: 1, ConfidenceHi: 1}
	if diff := cmp.Diff(want, e.Summary()); diff != "" {
		t.Errorf("Summary() mismatch (-want +got):\n%s", diff)
	}
}

// TestSummaryFormulas recomputes the statistics from Samples.
func TestSummaryFormulas(t *testing.T) {
	e, err := threshold.New(10, 30, threshold.WithSeed(11))
	require.NoError(t, err)

	samples := e.Samples()
	require.Len(t, samples, 30)
	var sum float64
	for _, x := range samples {
		require.Greater(t, x, 0.0)
		require.LessOrEqual(t, x, 1.0)
		sum += x
	}
	mean := sum / 30
	var ss float64
	for _, x := range samples {
		ss += (x - mean) * (x - mean)
	}
	sd := math.Sqrt(ss / 29)
	half := threshold.Confidence95 * sd / math.Sqrt(30)

	assert.InDelta(t, mean, e.Mean(), 1e-12)
	assert.InDelta(t, sd, e.StdDev(), 1e-12)
	assert.InDelta(t, mean-half, e.ConfidenceLo(), 1e-12)
	assert.InDelta(t, mean+half, e.ConfidenceHi(), 1e-12)
	assert.Equal(t, 10, e.N())
	assert.Equal(t, 30, e.Trials())

	// Samples hands out a copy.
	samples[0] = -1
	assert.NotEqual(t, -1.0, e.Samples()[0])
}

// TestSeedIsReproducibleAcrossWorkers runs the same seed sequentially and on
// four workers and expects identical samples.
func TestSeedIsReproducibleAcrossWorkers(t *testing.T) {
	seq, err := threshold.New(16, 24, threshold.WithSeed(99))
	require.NoError(t, err)
	par, err := threshold.New(16, 24, threshold.WithSeed(99), threshold.WithWorkers(4))
	require.NoError(t, err)

	assert.Equal(t, seq.Samples(), par.Samples())
	assert.Equal(t, seq.Summary(), par.Summary())
}

// TestBrokenSourceFails surfaces out-of-range draws instead of looping.
func TestBrokenSourceFails(t *testing.T) {
	_, err := threshold.New(3, 2, threshold.WithSource(outOfRange{}))
	require.ErrorIs(t, err, threshold.ErrInvalidArgument)
	require.ErrorIs(t, err, percolation.ErrInvalidArgument)
}

// TestRunCanceled stops before the first trial when ctx is already done.
func TestRunCanceled(t *testing.T) {
	for _, workers := range []int{1, 3} {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		e, err := threshold.Run(ctx, 8, 10, threshold.WithSeed(1), threshold.WithWorkers(workers))
		require.ErrorIs(t, err, context.Canceled, "workers=%d", workers)
		assert.Nil(t, e)
	}
}

// TestLogger records one debug line per trial and one summary line.
func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := threshold.New(4, 6, threshold.WithSeed(5), threshold.WithLogger(logger))
	require.NoError(t, err)

	counts := map[string]int{}
	dec := json.NewDecoder(&buf)
	for dec.More() {
		var rec map[string]any
		require.NoError(t, dec.Decode(&rec))
		counts[rec["msg"].(string)]++
	}
	assert.Equal(t, 6, counts["trial percolated"])
	assert.Equal(t, 1, counts["percolation threshold estimated"])
}

// TestThresholdNearCritical is a wide-tolerance sanity check: the
// square-lattice site threshold is about 0.5927.
func TestThresholdNearCritical(t *testing.T) {
	if testing.Short() {
		t.Skip("200×200 × 100 trials")
	}
	e, err := threshold.New(200, 100, threshold.WithSeed(2024), threshold.WithWorkers(4))
	require.NoError(t, err)

	assert.InDelta(t, 0.593, e.Mean(), 0.03)
	assert.Less(t, e.ConfidenceLo(), e.Mean())
	assert.Greater(t, e.ConfidenceHi(), e.Mean())
	assert.Less(t, e.StdDev(), 0.05)
}
