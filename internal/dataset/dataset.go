// Package dataset provides small in-memory regression datasets: CSV loading,
// synthetic generation, shuffling, splitting and batching.
package dataset

import (
	"encoding/csv"
	"io"
	"math/rand"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// ErrMalformed is returned for CSV input that cannot be parsed.
var ErrMalformed = errors.New("dataset: malformed input")

// Dataset holds feature rows and one regression target per row.
type Dataset struct {
	Features [][]float64 // [num_samples][num_features]
	Targets  []float64   // [num_samples]
}

// NumSamples returns the number of rows.
func (d *Dataset) NumSamples() int {
	return len(d.Targets)
}

// NumFeatures returns the number of features per row, 0 when empty.
func (d *Dataset) NumFeatures() int {
	if len(d.Features) == 0 {
		return 0
	}
	return len(d.Features[0])
}

// LoadCSV loads a dataset from a CSV file.
//
// CSV Format:
//
//	x0,x1,...,y
//	0.5,1.2,...,3.4
//
// The first row is a header and is skipped. The last column is the target.
// maxSamples limits the number of rows read (0 = load all).
func LoadCSV(filename string, maxSamples int) (*Dataset, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open file")
	}
	defer file.Close()

	return ReadCSV(file, maxSamples)
}

// ReadCSV parses the CSV format described in LoadCSV from r.
func ReadCSV(r io.Reader, maxSamples int) (*Dataset, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read CSV")
	}
	if len(records) < 2 {
		return nil, errors.Wrap(ErrMalformed, "CSV file is empty or missing header")
	}

	header := records[0]
	if len(header) < 2 {
		return nil, errors.Wrapf(ErrMalformed, "need at least one feature and a target, header has %d columns", len(header))
	}
	records = records[1:]
	if maxSamples > 0 && len(records) > maxSamples {
		records = records[:maxSamples]
	}

	d := &Dataset{
		Features: make([][]float64, len(records)),
		Targets:  make([]float64, len(records)),
	}
	numFeatures := len(header) - 1
	for i, record := range records {
		row := make([]float64, numFeatures)
		for j, field := range record {
			x, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, errors.Wrapf(ErrMalformed, "row %d, column %d: %v", i+1, j+1, err)
			}
			if j == numFeatures {
				d.Targets[i] = x
			} else {
				row[j] = x
			}
		}
		d.Features[i] = row
	}
	return d, nil
}

// Synthetic generates a linear regression problem
//
//	y = 0.5 + Σ w_j * x_j + noise,  w_j = (j+1) * (-1)^j / features
//
// with x_j drawn from U(-1, 1) and noise from N(0, noise²).
func Synthetic(rng *rand.Rand, samples, features int, noise float64) *Dataset {
	weights := make([]float64, features)
	for j := range weights {
		w := float64(j+1) / float64(features)
		if j%2 == 1 {
			w = -w
		}
		weights[j] = w
	}

	d := &Dataset{
		Features: make([][]float64, samples),
		Targets:  make([]float64, samples),
	}
	for i := range samples {
		row := make([]float64, features)
		y := 0.5
		for j := range row {
			row[j] = rng.Float64()*2 - 1
			y += weights[j] * row[j]
		}
		d.Features[i] = row
		d.Targets[i] = y + rng.NormFloat64()*noise
	}
	return d
}

// Shuffle permutes rows in place.
func (d *Dataset) Shuffle(rng *rand.Rand) {
	rng.Shuffle(d.NumSamples(), func(i, j int) {
		d.Features[i], d.Features[j] = d.Features[j], d.Features[i]
		d.Targets[i], d.Targets[j] = d.Targets[j], d.Targets[i]
	})
}

// Split divides the dataset into training and validation parts. The last
// validationRatio of rows becomes the validation set; rows are shared, not
// copied.
func (d *Dataset) Split(validationRatio float64) (*Dataset, *Dataset) {
	splitIdx := int(float64(d.NumSamples()) * (1.0 - validationRatio))

	return &Dataset{
			Features: d.Features[:splitIdx],
			Targets:  d.Targets[:splitIdx],
		}, &Dataset{
			Features: d.Features[splitIdx:],
			Targets:  d.Targets[splitIdx:],
		}
}

// Batches splits the dataset into consecutive batches of at most size rows.
// A size of 0 or less yields one batch with every row.
func (d *Dataset) Batches(size int) []*Dataset {
	n := d.NumSamples()
	if n == 0 {
		return nil
	}
	if size <= 0 || size > n {
		size = n
	}

	batches := make([]*Dataset, 0, (n+size-1)/size)
	for start := 0; start < n; start += size {
		end := min(start+size, n)
		batches = append(batches, &Dataset{
			Features: d.Features[start:end],
			Targets:  d.Targets[start:end],
		})
	}
	return batches
}
