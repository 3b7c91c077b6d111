package main

import (
	"fmt"
	"log"
	"os"

	"github.com/FlavioCFOliveira/GoPerceptron/internal/activations"
	"github.com/FlavioCFOliveira/GoPerceptron/internal/dataset"
	"github.com/FlavioCFOliveira/GoPerceptron/internal/layer"
	"github.com/FlavioCFOliveira/GoPerceptron/internal/net"
)

func main() {
	fmt.Println("=== XOR Training Example ===")

	// Layer biases are fixed, so a constant third input of 1 gives the
	// hidden layer a trainable offset.
	inputs := [][]float64{
		{0, 0, 1},
		{0, 1, 1},
		{1, 0, 1},
		{1, 1, 1},
	}
	targets := [][]float64{{0}, {1}, {1}, {0}}

	ds, err := dataset.New(inputs, targets)
	if err != nil {
		log.Fatal(err)
	}
	if err := ds.Register("mse", dataset.SquaredError); err != nil {
		log.Fatal(err)
	}

	network, err := net.New(
		layer.New(3, 0, activations.Identity),
		layer.New(4, 0, activations.Tanh),
		layer.New(1, 0, activations.Sigmoid),
	)
	if err != nil {
		log.Fatal(err)
	}
	network.Summary(os.Stdout)

	fmt.Println("Optimizer: online SGD with learning rate 0.5")
	_, err = network.Fit(ds, net.FitOptions{
		Epochs:       5000,
		LearningRate: 0.5,
		Initialize:   1,
		Callbacks:    []net.Callback{net.Logger{Interval: 500}},
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("\nTesting trained network:")
	for i := range inputs {
		pred, err := network.Predict(inputs[i])
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Input: %v, Predicted: %.4f, Target: %v\n", inputs[i][:2], pred[0], targets[i][0])
	}

	rec, err := network.Evaluate(ds, net.EvalOptions{})
	if err != nil {
		log.Fatal(err)
	}
	mse, _ := rec.Mean("mse")
	fmt.Printf("\nMean squared error: %.6f\n", mse)
}
