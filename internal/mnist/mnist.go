package mnist

import (
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/FlavioCFOliveira/GoPerceptron/internal/dataset"
)

// Classes is the number of digit classes.
const Classes = 10

// Standard file names of the distributed corpus.
const (
	TrainImages = "train-images-idx3-ubyte.gz"
	TrainLabels = "train-labels-idx1-ubyte.gz"
	TestImages  = "t10k-images-idx3-ubyte.gz"
	TestLabels  = "t10k-labels-idx1-ubyte.gz"
)

// Rescale maps raw pixel intensities to [0, 1].
func Rescale(pixels []byte) []float64 {
	x := make([]float64, len(pixels))
	for i, p := range pixels {
		x[i] = float64(p) / 255
	}
	return x
}

// OneHot encodes a digit label as a target vector of width Classes.
func OneHot(digit byte) []float64 {
	return dataset.OneHot(int(digit), Classes)
}

// Load reads an image file and its label file into a Dataset of rescaled,
// flattened images and one-hot targets. At most limit examples are read
// when limit is positive.
func Load(imagesPath, labelsPath string, limit int) (*dataset.Dataset, error) {
	images, _, _, err := ReadImages(imagesPath, limit)
	if err != nil {
		return nil, err
	}
	labels, err := ReadLabels(labelsPath, limit)
	if err != nil {
		return nil, err
	}
	if len(images) == 0 {
		return nil, errors.Wrapf(ErrFormat, "%s holds no images", imagesPath)
	}
	if len(images) != len(labels) {
		return nil, errors.Wrapf(ErrFormat, "%d images but %d labels", len(images), len(labels))
	}

	inputs := make([][]float64, len(images))
	targets := make([][]float64, len(labels))
	for i := range images {
		if labels[i] >= Classes {
			return nil, errors.Wrapf(ErrFormat, "label %d of example %d out of range", labels[i], i)
		}
		inputs[i] = Rescale(images[i])
		targets[i] = OneHot(labels[i])
	}
	return dataset.New(inputs, targets)
}

// LoadDir loads the training and test splits from the standard file names
// in dir.
func LoadDir(dir string, limit int) (train, test *dataset.Dataset, err error) {
	train, err = Load(filepath.Join(dir, TrainImages), filepath.Join(dir, TrainLabels), limit)
	if err != nil {
		return nil, nil, errors.Wrap(err, "training set")
	}
	test, err = Load(filepath.Join(dir, TestImages), filepath.Join(dir, TestLabels), limit)
	if err != nil {
		return nil, nil, errors.Wrap(err, "test set")
	}
	return train, test, nil
}
