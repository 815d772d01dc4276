// Package train runs the training loop: it builds a model, a loss and an
// optimizer from configuration and fits them to a dataset.
//
// Each step zeroes the gradients, builds one graph per sample of the batch,
// reduces them with the loss, runs a single backward pass from the loss and
// lets the optimizer update the parameters. Validation is forward-only and is
// spread over worker goroutines.
package train

import (
	"context"
	"fmt"
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/born-ml/micrograd/internal/config"
	"github.com/born-ml/micrograd/internal/dataset"
	"github.com/born-ml/micrograd/internal/nn"
	"github.com/born-ml/micrograd/internal/optim"
	"github.com/born-ml/micrograd/internal/parallel"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"k8s.io/klog/v2"
)

// ErrNoData is returned when there is nothing to train on.
var ErrNoData = errors.New("train: empty training set")

// EpochStats summarizes one epoch.
type EpochStats struct {
	Epoch     int
	TrainLoss float64 // Mean batch loss
	ValLoss   float64 // NaN when there is no validation set
	LR        float64 // Learning rate after the epoch
	Duration  time.Duration
}

// Result is returned by Trainer.Run.
type Result struct {
	History []EpochStats
}

// Last returns the stats of the final epoch, or the zero value if no epoch ran.
func (r *Result) Last() EpochStats {
	if len(r.History) == 0 {
		return EpochStats{ValLoss: math.NaN()}
	}
	return r.History[len(r.History)-1]
}

// Trainer fits an MLP to a dataset.
type Trainer struct {
	cfg       config.Config
	model     *nn.MLP
	loss      nn.Loss
	optimizer optim.Optimizer
	train     *dataset.Dataset
	val       *dataset.Dataset
	rng       *rand.Rand
	workers   parallel.Config
	progress  io.Writer
}

// New builds a trainer for data. The data is shuffled once and split into
// training and validation sets according to cfg.Train.ValFraction.
func New(cfg config.Config, data *dataset.Dataset) (*Trainer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if data == nil || data.NumSamples() == 0 {
		return nil, ErrNoData
	}

	act, err := nn.ParseActivation(cfg.Model.Activation)
	if err != nil {
		return nil, err
	}
	initializer, err := nn.ParseInitializer(cfg.Model.Init)
	if err != nil {
		return nil, err
	}
	loss, err := nn.ParseLoss(cfg.Train.Loss)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(cfg.Train.Seed))
	model := nn.NewMLP(nn.MLPConfig{
		InFeatures:  data.NumFeatures(),
		OutFeatures: 1,
		Hidden:      cfg.Model.Hidden,
		Activation:  act,
		Init:        initializer,
	}, rng)

	opt := cfg.Train.Optimizer
	optimizer, err := optim.New(model.Parameters(), optim.Config{
		Name:     opt.Name,
		LR:       opt.LR,
		Decay:    opt.Decay,
		Momentum: opt.Momentum,
		Beta1:    opt.Beta1,
		Beta2:    opt.Beta2,
		Eps:      opt.Eps,
	})
	if err != nil {
		return nil, err
	}

	data.Shuffle(rng)
	trainSet, valSet := data.Split(cfg.Train.ValFraction)
	if trainSet.NumSamples() == 0 {
		return nil, errors.Wrapf(ErrNoData, "%d samples with val_fraction %g", data.NumSamples(), cfg.Train.ValFraction)
	}

	return &Trainer{
		cfg:       cfg,
		model:     model,
		loss:      loss,
		optimizer: optimizer,
		train:     trainSet,
		val:       valSet,
		rng:       rng,
		workers:   workerConfig(cfg.Train.Workers),
	}, nil
}

func workerConfig(n int) parallel.Config {
	switch {
	case n == 0:
		return parallel.DefaultConfig()
	case n == 1:
		return parallel.Sequential()
	default:
		cfg := parallel.DefaultConfig()
		cfg.Enabled = true
		cfg.NumWorkers = n
		return cfg
	}
}

// SetProgress enables an epoch progress bar written to w. A nil writer
// disables it.
func (t *Trainer) SetProgress(w io.Writer) {
	t.progress = w
}

// Model returns the network being trained.
func (t *Trainer) Model() *nn.MLP {
	return t.model
}

// Optimizer returns the optimizer updating the model.
func (t *Trainer) Optimizer() optim.Optimizer {
	return t.optimizer
}

// Sizes returns the number of training and validation samples.
func (t *Trainer) Sizes() (trainSamples, valSamples int) {
	return t.train.NumSamples(), t.val.NumSamples()
}

// Run trains for cfg.Train.Epochs epochs. It stops early, returning the
// history so far together with the context error, when ctx is done.
func (t *Trainer) Run(ctx context.Context) (*Result, error) {
	epochs := t.cfg.Train.Epochs
	klog.Infof("Training %s on %d samples (%d validation) for %d epochs",
		t.describe(), t.train.NumSamples(), t.val.NumSamples(), epochs)

	var bar *progressbar.ProgressBar
	if t.progress != nil {
		bar = progressbar.NewOptions(epochs,
			progressbar.OptionSetWriter(t.progress),
			progressbar.OptionSetDescription("Training"),
			progressbar.OptionShowIts(),
			progressbar.OptionSetItsString("epochs"),
			progressbar.OptionSetTheme(progressbar.ThemeUnicode),
		)
	}

	result := &Result{History: make([]EpochStats, 0, epochs)}
	for epoch := 1; epoch <= epochs; epoch++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		stats, err := t.Epoch(epoch)
		if err != nil {
			return result, errors.Wrapf(err, "epoch %d", epoch)
		}
		result.History = append(result.History, stats)

		klog.V(1).Infof("epoch %d: train_loss=%.6g val_loss=%.6g lr=%.4g (%s)",
			epoch, stats.TrainLoss, stats.ValLoss, stats.LR, stats.Duration)
		if bar != nil {
			bar.Describe(fmt.Sprintf("Training [loss=%.4g]", stats.TrainLoss))
			_ = bar.Add(1)
		}
	}
	if bar != nil {
		_ = bar.Finish()
	}

	last := result.Last()
	klog.Infof("Finished training: train_loss=%.6g val_loss=%.6g", last.TrainLoss, last.ValLoss)
	return result, nil
}

// Epoch runs one pass over the shuffled training set and evaluates the
// validation set.
func (t *Trainer) Epoch(epoch int) (EpochStats, error) {
	start := time.Now()
	t.train.Shuffle(t.rng)

	batches := t.train.Batches(t.cfg.Train.BatchSize)
	var total float64
	for i, batch := range batches {
		loss, err := t.Step(batch)
		if err != nil {
			return EpochStats{}, errors.Wrapf(err, "batch %d", i)
		}
		klog.V(2).Infof("epoch %d batch %d/%d: loss=%.6g", epoch, i+1, len(batches), loss)
		total += loss
	}

	valLoss := math.NaN()
	if t.val.NumSamples() > 0 {
		var err error
		if valLoss, err = t.Evaluate(t.val); err != nil {
			return EpochStats{}, errors.Wrap(err, "validation")
		}
	}

	return EpochStats{
		Epoch:     epoch,
		TrainLoss: total / float64(len(batches)),
		ValLoss:   valLoss,
		LR:        t.optimizer.GetLR(),
		Duration:  time.Since(start),
	}, nil
}

// Step performs one optimization step on batch and returns the loss before
// the update.
func (t *Trainer) Step(batch *dataset.Dataset) (float64, error) {
	t.optimizer.ZeroGrad()

	predictions := make([]*autodiff.Value, batch.NumSamples())
	for i, row := range batch.Features {
		y, err := t.model.ForwardScalar(autodiff.Leaves(row...))
		if err != nil {
			return 0, errors.Wrapf(err, "sample %d", i)
		}
		predictions[i] = y
	}

	loss, err := t.loss.Forward(predictions, autodiff.Leaves(batch.Targets...))
	if err != nil {
		return 0, err
	}

	loss.Backward()
	t.optimizer.Step()
	return loss.Data(), nil
}

// Evaluate returns the loss of the current model on d without touching any
// gradient. Samples are evaluated concurrently.
func (t *Trainer) Evaluate(d *dataset.Dataset) (float64, error) {
	predictions, err := Predict(t.model, d.Features, t.workers)
	if err != nil {
		return 0, err
	}
	loss, err := t.loss.Forward(autodiff.Leaves(predictions...), autodiff.Leaves(d.Targets...))
	if err != nil {
		return 0, err
	}
	return loss.Data(), nil
}

// Predict runs the single-output model on every row. Each row builds its own
// graph; parameters are only read.
func Predict(model *nn.MLP, rows [][]float64, workers parallel.Config) ([]float64, error) {
	predictions := make([]float64, len(rows))
	err := parallel.ForErr(len(rows), func(i int) error {
		y, err := model.ForwardScalar(autodiff.Leaves(rows[i]...))
		if err != nil {
			return errors.Wrapf(err, "row %d", i)
		}
		predictions[i] = y.Data()
		return nil
	}, workers)
	if err != nil {
		return nil, err
	}
	return predictions, nil
}

func (t *Trainer) describe() string {
	return fmt.Sprintf("MLP%v (%s, %s loss, %s)", t.model.Dims(), t.model.Activation(),
		t.cfg.Train.Loss, t.cfg.Train.Optimizer.Name)
}
