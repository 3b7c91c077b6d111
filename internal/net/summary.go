package net

import (
	"fmt"
	"io"
)

// Summary prints the layer widths, activations and trainable parameter counts.
func (n *Network) Summary(w io.Writer) {
	fmt.Fprintln(w, "Model: feed-forward")
	fmt.Fprintln(w, "_________________________________________________________________")
	fmt.Fprintf(w, "%-12s %-8s %-12s %-8s %-8s %-10s\n", "Layer", "Width", "Activation", "Bias", "Dropout", "Param #")
	fmt.Fprintln(w, "=================================================================")

	totalParams := 0
	last := len(n.layers) - 1
	for i, l := range n.layers {
		params := 0
		if i < last {
			r, c := n.weights[i].Dims()
			params = r * c
		}
		totalParams += params

		fmt.Fprintf(w, "%-12s %-8d %-12s %-8.3g %-8s %-10d\n",
			fmt.Sprintf("layer_%d", i), l.Width(), l.Activation().Name(), l.Bias(), l.Dropout(), params)
	}
	fmt.Fprintln(w, "=================================================================")
	fmt.Fprintf(w, "Total params: %d\n", totalParams)
	fmt.Fprintln(w, "_________________________________________________________________")
}
