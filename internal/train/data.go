package train

import (
	"math/rand"

	"github.com/born-ml/micrograd/internal/config"
	"github.com/born-ml/micrograd/internal/dataset"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// LoadData returns the dataset selected by cfg: the CSV file at cfg.Path, or
// a synthetic linear problem when no path is set.
func LoadData(cfg config.DataConfig, seed int64) (*dataset.Dataset, error) {
	if cfg.Path == "" {
		klog.V(1).Infof("Generating %d synthetic samples with %d features", cfg.Samples, cfg.Features)
		return dataset.Synthetic(rand.New(rand.NewSource(seed)), cfg.Samples, cfg.Features, cfg.Noise), nil
	}

	d, err := dataset.LoadCSV(cfg.Path, cfg.Samples)
	if err != nil {
		return nil, errors.Wrapf(err, "dataset %q", cfg.Path)
	}
	klog.V(1).Infof("Loaded %d samples with %d features from %s", d.NumSamples(), d.NumFeatures(), cfg.Path)
	return d, nil
}
