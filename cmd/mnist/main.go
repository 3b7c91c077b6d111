package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/FlavioCFOliveira/GoPerceptron/internal/activations"
	"github.com/FlavioCFOliveira/GoPerceptron/internal/dataset"
	"github.com/FlavioCFOliveira/GoPerceptron/internal/layer"
	"github.com/FlavioCFOliveira/GoPerceptron/internal/mnist"
	"github.com/FlavioCFOliveira/GoPerceptron/internal/net"
	"github.com/FlavioCFOliveira/GoPerceptron/internal/opt"
)

// MNIST digit classification with online gradient descent.
// Expects the four gzip-compressed IDX files in -data.
func main() {
	dataDir := flag.String("data", "data", "directory holding the MNIST IDX files")
	hidden := flag.String("hidden", "64", "comma-separated hidden layer widths")
	epochs := flag.Int("epochs", 10, "training epochs")
	lr := flag.Float64("lr", 0.05, "initial learning rate")
	decay := flag.Float64("decay", 0.9, "learning rate decay per epoch")
	scale := flag.Float64("init", 0.1, "weights are drawn uniformly from [-init, init]")
	limit := flag.Int("limit", 0, "read at most this many examples per split (0 = all)")
	seed := flag.Int64("seed", net.DefaultSeed, "weight initialisation seed")
	csvLog := flag.String("log", "", "write per-epoch losses to this CSV file")
	flag.Parse()

	fmt.Println("=== MNIST Digit Classification ===")

	train, test, err := mnist.LoadDir(*dataDir, *limit)
	if err != nil {
		log.Fatalf("loading MNIST: %v", err)
	}
	fmt.Printf("Loaded %d training and %d test examples\n", train.Size(), test.Size())
	if train.Size() == 0 || test.Size() == 0 {
		log.Fatal("MNIST corpus holds no examples")
	}

	widths, err := parseWidths(*hidden)
	if err != nil {
		log.Fatalf("invalid -hidden: %v", err)
	}

	layers := []*layer.Layer{layer.New(len(train.Inputs()[0]), 0, activations.Identity)}
	for _, w := range widths {
		layers = append(layers, layer.New(w, 0, activations.Sigmoid))
	}
	layers = append(layers, layer.New(mnist.Classes, 0, activations.Sigmoid))

	network, err := net.New(layers...)
	if err != nil {
		log.Fatalf("building network: %v", err)
	}
	network.SetSeed(*seed)
	network.Summary(os.Stdout)

	callbacks := []net.Callback{net.Logger{Interval: 1}}
	if *csvLog != "" {
		callbacks = append(callbacks, net.NewCSVLogger(*csvLog, false))
	}

	fmt.Println("\nTraining...")
	final, err := network.Fit(train, net.FitOptions{
		Epochs:     *epochs,
		Scheduler:  opt.NewExponentialLR(*lr, *decay),
		Initialize: *scale,
		Callbacks:  callbacks,
	})
	if err != nil {
		log.Fatalf("training: %v", err)
	}
	fmt.Printf("Final training loss: %.6f\n", final)

	if err := test.Register("correct", dataset.Correct); err != nil {
		log.Fatal(err)
	}
	if err := test.Register("mse", dataset.SquaredError); err != nil {
		log.Fatal(err)
	}

	rec, err := network.Evaluate(test, net.EvalOptions{})
	if err != nil {
		log.Fatalf("evaluating: %v", err)
	}
	acc, _ := rec.Mean("correct")
	mse, _ := rec.Mean("mse")
	fmt.Printf("\nTest accuracy: %.2f%% (mse %.4f)\n", acc*100, mse)
}

func parseWidths(s string) ([]int, error) {
	var widths []int
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		w, err := strconv.Atoi(field)
		if err != nil {
			return nil, err
		}
		if w <= 0 {
			return nil, fmt.Errorf("width %d must be positive", w)
		}
		widths = append(widths, w)
	}
	return widths, nil
}
