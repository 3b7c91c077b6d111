package net

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/FlavioCFOliveira/GoPerceptron/internal/dataset"
	"github.com/FlavioCFOliveira/GoPerceptron/internal/opt"
)

// lossHistory records every epoch loss.
type lossHistory struct {
	BaseCallback
	losses []float64
	began  int
	ended  int
}

func (h *lossHistory) OnTrainBegin(n *Network) { h.began++ }
func (h *lossHistory) OnTrainEnd(n *Network)   { h.ended++ }
func (h *lossHistory) OnEpochEnd(epoch int, loss float64, n *Network) {
	h.losses = append(h.losses, loss)
}

func mean(xs []float64) float64 {
	var s float64
	for _, x := range xs {
		s += x
	}
	return s / float64(len(xs))
}

// TestFitConvergesOnSeparableData trains a sigmoid network on two clusters.
func TestFitConvergesOnSeparableData(t *testing.T) {
	ds := separable(t)
	require.NoError(t, ds.Register("correct", dataset.Correct))

	n := sigmoidNetwork(t)
	history := &lossHistory{}

	final, err := n.Fit(ds, FitOptions{
		Epochs:       100,
		LearningRate: 0.5,
		Initialize:   0.5,
		Callbacks:    []Callback{history},
	})
	require.NoError(t, err)

	require.Len(t, history.losses, 100)
	assert.Equal(t, history.losses[99], final)
	assert.Less(t, mean(history.losses[90:]), mean(history.losses[:10]))
	assert.Less(t, final, history.losses[0])
	assert.Equal(t, 1, history.began)
	assert.Equal(t, 1, history.ended)

	rec, err := n.Evaluate(ds, EvalOptions{})
	require.NoError(t, err)
	acc, ok := rec.Mean("correct")
	require.True(t, ok)
	assert.Equal(t, 1.0, acc)
}

func TestFitWithScheduler(t *testing.T) {
	n := sigmoidNetwork(t)
	sched := opt.NewExponentialLR(1.0, 0.5)

	_, err := n.Fit(separable(t), FitOptions{Epochs: 3, Initialize: 0.5, Scheduler: sched})
	require.NoError(t, err)

	assert.InDelta(t, 0.125, sched.LearningRate(), 1e-12)
	assert.Len(t, n.TrainingRecord(), 3)
}

func TestFitEarlyStopping(t *testing.T) {
	n := sigmoidNetwork(t)
	// No epoch can improve the loss by more than the threshold.
	stopper := NewEarlyStopping(2, 10)
	history := &lossHistory{}

	_, err := n.Fit(separable(t), FitOptions{
		Epochs:       50,
		LearningRate: 0.1,
		Initialize:   0.5,
		Callbacks:    []Callback{stopper, history},
	})
	require.NoError(t, err)

	assert.True(t, stopper.Stopped)
	assert.Equal(t, 2, stopper.StoppedAt)
	assert.Len(t, history.losses, 3)
}

func TestFitInvalidOptions(t *testing.T) {
	_, err := sigmoidNetwork(t).Fit(separable(t), FitOptions{})
	assert.True(t, errors.Is(err, ErrInvalidInput))

	_, err = sigmoidNetwork(t).Fit(separable(t), FitOptions{Epochs: 1, LearningRate: -1})
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestFitDefaultLearningRateTrains(t *testing.T) {
	n := sigmoidNetwork(t)
	n.Initialize(0.5)
	before := n.Weights(0)

	_, err := n.Fit(separable(t), FitOptions{Epochs: 1})
	require.NoError(t, err)

	assert.False(t, mat.Equal(before, n.Weights(0)))
}

func TestFitPropagatesShapeErrors(t *testing.T) {
	ds, err := dataset.New([][]float64{{1, 2, 3}}, [][]float64{{1, 0}})
	require.NoError(t, err)

	_, err = sigmoidNetwork(t).Fit(ds, FitOptions{Epochs: 1})
	assert.True(t, errors.Is(err, ErrShape))
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := Logger{Interval: 2, Out: &buf}

	for epoch := 0; epoch < 4; epoch++ {
		logger.OnEpochEnd(epoch, 0.5, nil)
	}

	assert.Equal(t, "Epoch 0: loss = 0.500000\nEpoch 2: loss = 0.500000\n", buf.String())
}

func readCSV(t *testing.T, filename string) [][]string {
	t.Helper()
	file, err := os.Open(filename)
	require.NoError(t, err)
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	return records
}

func TestCSVLoggerWritesStatistics(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "log.csv")
	ds := separable(t)
	require.NoError(t, ds.Register("correct", dataset.Correct))
	require.NoError(t, ds.Register("mse", dataset.SquaredError))

	n := sigmoidNetwork(t)
	logger := NewCSVLogger(filename, false)
	history := &lossHistory{}

	_, err := n.Fit(ds, FitOptions{
		Epochs:       2,
		LearningRate: 0.5,
		Initialize:   0.5,
		Callbacks:    []Callback{logger, history},
	})
	require.NoError(t, err)
	require.NoError(t, logger.Err())

	records := readCSV(t, filename)
	require.Len(t, records, 3) // Header + 2 epochs
	assert.Equal(t, []string{"epoch", "loss", "correct", "mse", "time_seconds"}, records[0])

	for epoch, row := range records[1:] {
		require.Len(t, row, 5)
		assert.Equal(t, strconv.Itoa(epoch), row[0])
		assert.Equal(t, strconv.FormatFloat(history.losses[epoch], 'f', 6, 64), row[1])

		// The epoch loss is the mean squared error of that pass.
		loss, err := strconv.ParseFloat(row[1], 64)
		require.NoError(t, err)
		mse, err := strconv.ParseFloat(row[3], 64)
		require.NoError(t, err)
		assert.InDelta(t, loss, mse, 2e-6)

		acc, err := strconv.ParseFloat(row[2], 64)
		require.NoError(t, err)
		assert.True(t, acc >= 0 && acc <= 1, "accuracy %v", acc)
	}
}

func TestCSVLoggerAppendKeepsSingleHeader(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "log.csv")
	n := &Network{}

	for run := 0; run < 2; run++ {
		logger := NewCSVLogger(filename, true)
		logger.OnTrainBegin(n)
		logger.OnEpochEnd(0, 0.5, n)
		logger.OnTrainEnd(n)
		require.NoError(t, logger.Err())
	}

	records := readCSV(t, filename)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"epoch", "loss", "time_seconds"}, records[0])
	assert.Equal(t, "0.500000", records[2][1])
}

func TestCSVLoggerReportsOpenError(t *testing.T) {
	logger := NewCSVLogger(filepath.Join(t.TempDir(), "missing", "log.csv"), false)
	n := &Network{}

	logger.OnTrainBegin(n)
	logger.OnEpochEnd(0, 0.5, n)
	logger.OnTrainEnd(n)

	require.Error(t, logger.Err())
	assert.True(t, errors.Is(logger.Err(), os.ErrNotExist))
}

func TestSummary(t *testing.T) {
	n := sigmoidNetwork(t)

	var buf bytes.Buffer
	n.Summary(&buf)
	out := buf.String()

	assert.Contains(t, out, "layer_0")
	assert.Contains(t, out, "Sigmoid")
	assert.Contains(t, out, "Total params: 4")
	assert.Equal(t, 1, strings.Count(out, "Model:"))
}
