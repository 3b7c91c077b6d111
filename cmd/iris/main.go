package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/FlavioCFOliveira/GoPerceptron/internal/activations"
	"github.com/FlavioCFOliveira/GoPerceptron/internal/dataset"
	"github.com/FlavioCFOliveira/GoPerceptron/internal/layer"
	"github.com/FlavioCFOliveira/GoPerceptron/internal/net"
	"github.com/FlavioCFOliveira/GoPerceptron/internal/opt"
)

// Iris dataset: 3 classes (Setosa, Versicolor, Virginica)
// Each sample has 4 features (sepal length, sepal width, petal length, petal width)
func main() {
	csvPath := flag.String("csv", "", "CSV file with features and one-hot label columns (synthetic data when empty)")
	labels := flag.String("labels", "4,5,6", "comma-separated label columns of the CSV file")
	header := flag.Bool("header", true, "the CSV file has a header row")
	epochs := flag.Int("epochs", 500, "maximum training epochs")
	flag.Parse()

	ds, err := loadData(*csvPath, *labels, *header)
	if err != nil {
		log.Fatalf("loading data: %v", err)
	}
	if ds.Size() == 0 {
		log.Fatal("dataset holds no examples")
	}
	ds.Normalize()
	if err := ds.Register("correct", dataset.Correct); err != nil {
		log.Fatal(err)
	}
	train, test := ds.Split(0.8)

	in, out := len(ds.Inputs()[0]), len(ds.Targets()[0])
	fmt.Printf("Training Iris classifier (%d-8-%d network) on %d examples...\n", in, out, train.Size())

	network, err := net.New(
		layer.New(in, 0, activations.Identity),
		layer.New(8, 0, activations.Tanh),
		layer.New(out, 0, activations.Sigmoid),
	)
	if err != nil {
		log.Fatal(err)
	}
	network.Summary(os.Stdout)

	stopper := net.NewEarlyStopping(20, 1e-5)
	_, err = network.Fit(train, net.FitOptions{
		Epochs:     *epochs,
		Scheduler:  opt.NewReduceLROnPlateau(0.2, 0.5, 5, 1e-4, 1e-3),
		Initialize: 0.5,
		Callbacks:  []net.Callback{net.Logger{Interval: 50}, stopper},
	})
	if err != nil {
		log.Fatalf("training: %v", err)
	}
	if stopper.Stopped {
		fmt.Printf("Stopped early at epoch %d\n", stopper.StoppedAt)
	}

	for _, split := range []struct {
		name string
		ds   *dataset.Dataset
	}{{"train", train}, {"test", test}} {
		rec, err := network.Evaluate(split.ds, net.EvalOptions{})
		if err != nil {
			log.Fatal(err)
		}
		acc, _ := rec.Mean("correct")
		fmt.Printf("%s accuracy: %.1f%%\n", split.name, acc*100)
	}
}

func loadData(path, labels string, header bool) (*dataset.Dataset, error) {
	if path == "" {
		return generateIrisData(150)
	}

	var cols []int
	for _, field := range strings.Split(labels, ",") {
		col, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, err
		}
		cols = append(cols, col)
	}
	return dataset.LoadCSV(path, cols, header)
}

// generateIrisData samples noisy points around the per-class means,
// interleaving the classes so any split keeps them balanced.
func generateIrisData(n int) (*dataset.Dataset, error) {
	means := [][]float64{
		{5.0, 3.4, 1.5, 0.2}, // Setosa
		{5.9, 2.8, 4.3, 1.3}, // Versicolor
		{6.6, 3.0, 5.6, 2.0}, // Virginica
	}
	noise := []float64{0.2, 0.25, 0.25}

	rng := rand.New(rand.NewSource(42))
	inputs := make([][]float64, n)
	targets := make([][]float64, n)
	for i := range inputs {
		class := i % len(means)
		x := make([]float64, len(means[class]))
		for j, v := range means[class] {
			x[j] = v + (rng.Float64()*2-1)*noise[class]
		}
		inputs[i] = x
		targets[i] = dataset.OneHot(class, len(means))
	}
	return dataset.New(inputs, targets)
}
