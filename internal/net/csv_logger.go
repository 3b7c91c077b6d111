package net

import (
	"encoding/csv"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/FlavioCFOliveira/GoPerceptron/internal/dataset"
)

// CSVLogger writes one row per epoch: the epoch number, its loss, the mean
// of every statistic registered on the training dataset and the elapsed
// time. Columns are fixed by the first epoch's record.
type CSVLogger struct {
	BaseCallback
	Filename string
	Append   bool

	file    *os.File
	writer  *csv.Writer
	start   time.Time
	columns []string
	started bool
	err     error
}

// NewCSVLogger creates a new CSVLogger.
func NewCSVLogger(filename string, append bool) *CSVLogger {
	return &CSVLogger{
		Filename: filename,
		Append:   append,
	}
}

// Err returns the first error met while writing the log.
func (c *CSVLogger) Err() error {
	return c.err
}

func (c *CSVLogger) fail(err error, msg string) {
	err = errors.Wrapf(err, "csv logger %s: %s", c.Filename, msg)
	log.Print(err)
	if c.err == nil {
		c.err = err
	}
}

func (c *CSVLogger) OnTrainBegin(n *Network) {
	mode := os.O_CREATE | os.O_WRONLY
	if c.Append {
		mode |= os.O_APPEND
	} else {
		mode |= os.O_TRUNC
	}

	c.err = nil
	c.columns = nil
	c.started = false

	file, err := os.OpenFile(c.Filename, mode, 0644)
	if err != nil {
		c.fail(err, "open")
		return
	}
	c.file = file
	c.writer = csv.NewWriter(file)
	c.start = time.Now()

	// Appending to a non-empty log continues its rows without a new header.
	if info, err := file.Stat(); err == nil && c.Append && info.Size() > 0 {
		c.started = true
	}
}

func (c *CSVLogger) OnEpochEnd(epoch int, loss float64, n *Network) {
	if c.writer == nil {
		return
	}

	rec := lastRecord(n)
	if c.columns == nil && rec != nil {
		c.columns = rec.Columns()
	}
	if !c.started {
		header := append([]string{"epoch", "loss"}, c.columns...)
		if err := c.writer.Write(append(header, "time_seconds")); err != nil {
			c.fail(err, "write header")
			return
		}
		c.started = true
	}

	row := []string{strconv.Itoa(epoch), strconv.FormatFloat(loss, 'f', 6, 64)}
	for _, name := range c.columns {
		field := ""
		if rec != nil {
			if mean, ok := rec.Mean(name); ok {
				field = strconv.FormatFloat(mean, 'f', 6, 64)
			}
		}
		row = append(row, field)
	}
	row = append(row, strconv.FormatFloat(time.Since(c.start).Seconds(), 'f', 2, 64))

	if err := c.writer.Write(row); err != nil {
		c.fail(err, "write epoch")
		return
	}
	c.writer.Flush()
	if err := c.writer.Error(); err != nil {
		c.fail(err, "flush")
	}
}

func (c *CSVLogger) OnTrainEnd(n *Network) {
	if c.file == nil {
		return
	}
	c.writer.Flush()
	if err := c.writer.Error(); err != nil {
		c.fail(err, "flush")
	}
	if err := c.file.Close(); err != nil {
		c.fail(err, "close")
	}
	c.file = nil
	c.writer = nil
}

// lastRecord is the record of the most recent dataset pass, if any.
func lastRecord(n *Network) *dataset.Record {
	if n == nil || len(n.records) == 0 {
		return nil
	}
	return n.records[len(n.records)-1]
}
