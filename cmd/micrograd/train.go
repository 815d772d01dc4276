package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/born-ml/micrograd/internal/checkpoint"
	"github.com/born-ml/micrograd/internal/config"
	"github.com/born-ml/micrograd/internal/optim"
	"github.com/born-ml/micrograd/internal/train"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// runTrain trains a model as configured by the YAML file and flags in args.
// Reports go to w, the progress bar to progress (nil disables it).
func runTrain(args []string, w, progress io.Writer) error {
	fs := flag.NewFlagSet("train", flag.ContinueOnError)
	configPath := fs.String("config", "", "YAML configuration file; defaults are used when empty")
	dataPath := fs.String("data", "", "CSV dataset, header row first and target in the last column (overrides data.path)")
	epochs := fs.Int("epochs", 0, "number of epochs (overrides train.epochs)")
	lr := fs.Float64("lr", 0, "learning rate (overrides train.optimizer.lr)")
	savePath := fs.String("save", "", "write a YAML checkpoint of the trained model to this path")
	quiet := fs.Bool("quiet", false, "disable the progress bar")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return err
		}
	}

	// Only flags given on the command line override the file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "data":
			cfg.Data.Path = *dataPath
		case "epochs":
			cfg.Train.Epochs = *epochs
		case "lr":
			cfg.Train.Optimizer.LR = *lr
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	data, err := train.LoadData(cfg.Data, cfg.Train.Seed)
	if err != nil {
		return err
	}
	trainer, err := train.New(cfg, data)
	if err != nil {
		return err
	}
	if !*quiet {
		trainer.SetProgress(progress)
	}

	model := trainer.Model()
	trainSamples, valSamples := trainer.Sizes()
	fmt.Fprintln(w, titleStyle.Render("micrograd "+version))
	summary := newTable()
	summary.Row("layers", fmt.Sprint(model.Dims()))
	summary.Row("activation", string(model.Activation()))
	summary.Row("# parameters", humanize.Comma(int64(len(model.Parameters()))))
	summary.Row("train samples", humanize.Comma(int64(trainSamples)))
	summary.Row("val samples", humanize.Comma(int64(valSamples)))
	summary.Row("optimizer", fmt.Sprintf("%s (lr=%g)", cfg.Train.Optimizer.Name, trainer.Optimizer().GetLR()))
	fmt.Fprintln(w, summary)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	result, err := trainer.Run(ctx)
	if errors.Is(err, context.Canceled) {
		klog.Warningf("Training interrupted after %d epochs", len(result.History))
	} else if err != nil {
		return err
	}

	last := result.Last()
	report := newTable()
	report.Row("epochs", humanize.Comma(int64(len(result.History))))
	report.Row("train loss", fmt.Sprintf("%.6g", last.TrainLoss))
	report.Row("val loss", fmt.Sprintf("%.6g", last.ValLoss))
	report.Row("final lr", fmt.Sprintf("%.4g", last.LR))
	report.Row("elapsed", time.Since(start).Round(time.Millisecond).String())
	fmt.Fprintln(w, report)

	if *savePath == "" {
		return nil
	}
	ck := checkpoint.FromModel(model, last.Epoch, last.TrainLoss)
	if s, ok := trainer.Optimizer().(optim.Stateful); ok {
		ck.Optimizer = s.StateDict()
	}
	if err := checkpoint.Save(*savePath, ck); err != nil {
		return err
	}
	klog.Infof("Saved checkpoint to %s", *savePath)
	return nil
}
