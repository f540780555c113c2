// Command pwlplot renders an interactive HTML chart comparing an
// activation's analytic curve against the core's generated PWL fit, plus
// the signed residual between them, for visually inspecting a fit the way
// the donor corpus's own parameter-sweep plotting tool does for its
// proof-size/bit-security sweeps.
//
// Usage:
//
//	pwlplot [flags] <activation>
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/cwbudde/algo-pwl/pwl"
)

const plotSamples = 400

func main() {
	lower := flag.Float64("lower", -10, "domain lower bound L")
	upper := flag.Float64("upper", 10, "domain upper bound U")
	eps := flag.Float64("eps", 0.005, "maximum absolute error budget")
	p := flag.Float64("p", 2, "exponent for the power activation")
	scale := flag.Float64("scale", 1, "scale operand for the power activation")
	shift := flag.Float64("shift", 0, "shift operand for the power activation")
	outPath := flag.String("out", "pwlfit.html", "output HTML file")
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "Usage: pwlplot [flags] <activation>")
		flag.PrintDefaults()
		os.Exit(2)
	}

	name := strings.ToLower(strings.TrimSpace(args[0]))
	act, analytic, err := resolveActivation(name, *p, *scale, *shift)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	segs, err := pwl.Approximate(act, *lower, *upper, *eps)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if err := render(*outPath, name, *lower, *upper, *eps, segs, analytic); err != nil {
		fmt.Fprintf(os.Stderr, "render error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s | activation=%s segments=%d domain=[%g, %g] eps_budget=%g\n",
		*outPath, name, len(segs)-1, *lower, *upper, *eps)
}

func resolveActivation(name string, p, scale, shift float64) (pwl.Activation, func(float64) float64, error) {
	switch name {
	case "sigmoid":
		return pwl.NewSigmoid(), func(x float64) float64 { return 1 / (1 + math.Exp(-x)) }, nil
	case "tanh":
		return pwl.NewTanh(), math.Tanh, nil
	case "exp":
		return pwl.NewExp(), math.Exp, nil
	case "log":
		return pwl.NewLog(), math.Log, nil
	case "softsign":
		return pwl.NewSoftSign(), func(x float64) float64 { return x / (1 + math.Abs(x)) }, nil
	case "power":
		return pwl.NewPower(p, scale, shift), func(x float64) float64 { return math.Pow(scale*x+shift, p) }, nil
	case "identity":
		return pwl.NewIdentity(), func(x float64) float64 { return x }, nil
	default:
		return pwl.Activation{}, nil, fmt.Errorf("unknown activation %q", name)
	}
}

func render(outPath, name string, lower, upper, eps float64, segs pwl.Segments, analytic func(float64) float64) error {
	step := (upper - lower) / float64(plotSamples)

	xs := make([]string, plotSamples+1)
	fLine := make([]opts.LineData, plotSamples+1)
	pwlLine := make([]opts.LineData, plotSamples+1)
	residLine := make([]opts.LineData, plotSamples+1)

	for i := 0; i <= plotSamples; i++ {
		x := lower + step*float64(i)
		fv := analytic(x)
		pv := segs.Evaluate(x)

		xs[i] = fmt.Sprintf("%.4g", x)
		fLine[i] = opts.LineData{Value: fv}
		pwlLine[i] = opts.LineData{Value: pv}
		residLine[i] = opts.LineData{Value: fv - pv}
	}

	page := components.NewPage().SetPageTitle(fmt.Sprintf("PWL fit: %s", name))

	fit := charts.NewLine()
	fit.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: fmt.Sprintf("%s: analytic vs PWL", name)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "x"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "y"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "inside"}, opts.DataZoom{Type: "slider"}),
	)
	fit.SetXAxis(xs).
		AddSeries("f(x)", fLine).
		AddSeries("pwl(x)", pwlLine, charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(false)}))

	resid := charts.NewLine()
	resid.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: fmt.Sprintf("%s: signed residual f(x) - pwl(x), budget=%g", name, eps)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "x"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "residual"}),
	)
	resid.SetXAxis(xs).AddSeries("f(x) - pwl(x)", residLine)

	page.AddCharts(fit, resid)

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	return page.Render(f)
}
