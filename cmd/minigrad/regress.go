package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/born-ml/minigrad/internal/autodiff"
	"github.com/born-ml/minigrad/internal/nn"
	"github.com/born-ml/minigrad/internal/optim"
	"github.com/born-ml/minigrad/internal/tensor"
	"github.com/charmbracelet/lipgloss"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

type regressConfig struct {
	epochs, numExamples, logEvery int
	lr, momentum                  float64
	optimizer                     string
	seed                          uint64
	plotPath                      string
	showGraph                     bool
}

func runRegress(args []string) error {
	var cfg regressConfig
	fs := flag.NewFlagSet("regress", flag.ContinueOnError)
	fs.IntVar(&cfg.epochs, "epochs", 100, "Number of full-batch training steps.")
	fs.IntVar(&cfg.numExamples, "examples", 100, "Number of synthetic examples.")
	fs.IntVar(&cfg.logEvery, "log_every", 10, "Report the loss every this many epochs.")
	fs.Float64Var(&cfg.lr, "lr", 3e-4, "Learning rate.")
	fs.Float64Var(&cfg.momentum, "momentum", 0, "SGD momentum factor.")
	fs.StringVar(&cfg.optimizer, "optimizer", "sgd", "Optimizer: \"sgd\" or \"adam\".")
	fs.Uint64Var(&cfg.seed, "seed", 42, "Random seed for data and initialization.")
	fs.StringVar(&cfg.plotPath, "plot", "", "If set, save the loss curve as a PNG to this path.")
	fs.BoolVar(&cfg.showGraph, "graph", false, "Print the dependency graph of the final loss.")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if cfg.epochs <= 0 || cfg.numExamples <= 0 || cfg.logEvery <= 0 {
		return errors.Errorf("-epochs, -examples and -log_every must be positive")
	}
	return regress(cfg)
}

// regress fits y = x * coef - 3 with a dense layer, minimizing the sum of
// squared errors.
func regress(cfg regressConfig) error {
	rng := rand.New(rand.NewPCG(cfg.seed, cfg.seed))
	coef := make([]float64, 3)
	for i := range coef {
		coef[i] = float64(rng.IntN(10))
	}
	xRaw := tensor.Randn(rng, tensor.Shape{cfg.numExamples, 3}, 0, 1)
	coefRaw := must.M1(tensor.New(coef, tensor.Shape{3}))
	x := autodiff.Const(xRaw)
	y := autodiff.Const(xRaw.Mul(coefRaw).AddScalar(-3))

	model := nn.NewDense(3, nn.DenseConfig{
		NumIn:      3,
		WeightInit: nn.Normal{Mean: 0, Std: 1},
		BiasInit:   nn.Normal{Mean: 0, Std: 1},
		RNG:        rng,
	})
	var opt optim.Optimizer
	switch cfg.optimizer {
	case "sgd":
		opt = optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: cfg.lr, Momentum: cfg.momentum})
	case "adam":
		opt = optim.NewAdam(model.Parameters(), optim.AdamConfig{LR: cfg.lr})
	default:
		return errors.Errorf("unknown optimizer %q", cfg.optimizer)
	}
	klog.V(1).Infof("regress: %d examples, true coefficients %v, %s with lr=%g",
		cfg.numExamples, coef, cfg.optimizer, opt.GetLR())

	losses := make([]float64, 0, cfg.epochs)
	report := newTable(lipgloss.Right)
	report.Headers("Epoch", "Loss")
	var loss *autodiff.Tensor
	for epoch := range cfg.epochs {
		opt.ZeroGrad()
		diff := model.Forward(x).Sub(y)
		loss = diff.Mul(diff).Sum()
		loss.Backward()
		opt.Step()

		losses = append(losses, loss.Item())
		if epoch%cfg.logEvery == 0 || epoch == cfg.epochs-1 {
			report.Row(strconv.Itoa(epoch), fmt.Sprintf("%.4f", loss.Item()))
		}
	}

	fmt.Println(titleStyle.Render("Training loss"))
	fmt.Println(report.Render())

	w, b := model.Weight().Tensor().Values(), model.Bias().Tensor().Values()
	learned := newTable(lipgloss.Right)
	learned.Headers("Output", "True coef", "Learned w[i,i]", "True bias", "Learned b[i]")
	for i, c := range coef {
		learned.Row(strconv.Itoa(i), fmt.Sprintf("%g", c), fmt.Sprintf("%.4f", w.At(i, i)),
			"-3", fmt.Sprintf("%.4f", b.At(0, i)))
	}
	fmt.Println(titleStyle.Render("Parameters"))
	fmt.Println(learned.Render())

	if cfg.showGraph {
		fmt.Println(titleStyle.Render("Graph of the final loss"))
		fmt.Print(autodiff.FormatGraph(loss))
	}
	if cfg.plotPath != "" {
		if err := plotLosses(cfg.plotPath, losses); err != nil {
			return err
		}
		klog.Infof("loss curve saved to %s", cfg.plotPath)
	}
	return nil
}
