// Package mnist reads the MNIST digit corpus in IDX format.
package mnist

import (
	"bufio"
	"compress/gzip"
	"encoding/binary"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

const (
	imageMagic = 2051
	labelMagic = 2049

	// maxSide bounds the rows and columns an image header may declare.
	maxSide = 1 << 12

	preallocImages = 1 << 16
)

// ErrFormat is returned for malformed IDX files.
var ErrFormat = errors.New("mnist: invalid IDX file")

// open returns a reader over filename, decompressing it when the name
// ends in ".gz".
func open(filename string) (io.Reader, func() error, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, nil, errors.Wrap(err, "mnist")
	}
	if !strings.HasSuffix(filename, ".gz") {
		return bufio.NewReader(file), file.Close, nil
	}

	gz, err := gzip.NewReader(file)
	if err != nil {
		file.Close()
		return nil, nil, errors.Wrapf(err, "mnist: %s", filename)
	}
	closer := func() error {
		gz.Close()
		return file.Close()
	}
	return bufio.NewReader(gz), closer, nil
}

func readHeader(r io.Reader, want int32, dims int) ([]int, error) {
	var magic int32
	if err := binary.Read(r, binary.BigEndian, &magic); err != nil {
		return nil, errors.Wrap(ErrFormat, err.Error())
	}
	if magic != want {
		return nil, errors.Wrapf(ErrFormat, "magic number %d, want %d", magic, want)
	}

	sizes := make([]int, dims)
	for i := range sizes {
		var n int32
		if err := binary.Read(r, binary.BigEndian, &n); err != nil {
			return nil, errors.Wrap(ErrFormat, err.Error())
		}
		if n < 0 {
			return nil, errors.Wrapf(ErrFormat, "negative dimension %d", n)
		}
		sizes[i] = int(n)
	}
	return sizes, nil
}

// ReadImages reads up to limit images from an IDX3 file (all of them when
// limit <= 0). Each image is returned as its raw row-major pixels along
// with the image dimensions.
func ReadImages(filename string, limit int) (images [][]byte, rows, cols int, err error) {
	r, closer, err := open(filename)
	if err != nil {
		return nil, 0, 0, err
	}
	defer closer()

	dims, err := readHeader(r, imageMagic, 3)
	if err != nil {
		return nil, 0, 0, errors.Wrapf(err, "%s", filename)
	}
	count, rows, cols := dims[0], dims[1], dims[2]
	if rows == 0 || cols == 0 || rows > maxSide || cols > maxSide {
		return nil, 0, 0, errors.Wrapf(ErrFormat, "%s: image size %dx%d", filename, rows, cols)
	}
	if limit > 0 && limit < count {
		count = limit
	}

	// The slice grows as images arrive, so a count larger than the file
	// fails on the first short read instead of allocating up front.
	images = make([][]byte, 0, min(count, preallocImages))
	for i := 0; i < count; i++ {
		img := make([]byte, rows*cols)
		if _, err := io.ReadFull(r, img); err != nil {
			return nil, 0, 0, errors.Wrapf(ErrFormat, "%s: image %d: %v", filename, i, err)
		}
		images = append(images, img)
	}
	return images, rows, cols, nil
}

// ReadLabels reads up to limit labels from an IDX1 file (all of them when
// limit <= 0).
func ReadLabels(filename string, limit int) ([]byte, error) {
	r, closer, err := open(filename)
	if err != nil {
		return nil, err
	}
	defer closer()

	dims, err := readHeader(r, labelMagic, 1)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", filename)
	}
	count := dims[0]
	if limit > 0 && limit < count {
		count = limit
	}

	labels, err := io.ReadAll(io.LimitReader(r, int64(count)))
	if err != nil {
		return nil, errors.Wrapf(ErrFormat, "%s: %v", filename, err)
	}
	if len(labels) < count {
		return nil, errors.Wrapf(ErrFormat, "%s: %d labels, header declares %d", filename, len(labels), count)
	}
	return labels, nil
}
