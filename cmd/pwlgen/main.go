// Command pwlgen prints the piecewise-linear segment table the core
// generates for a named activation over a given domain and error budget.
//
// Usage:
//
//	pwlgen [flags] <activation>
//
// Examples:
//
//	pwlgen -lower -10 -upper 10 -eps 0.005 sigmoid
//	pwlgen -lower -5 -upper 5 -eps 0.005 tanh
//	pwlgen -lower -4 -upper 10.4 -eps 0.01 exp
//	pwlgen -p 2 -lower -1 -upper 1 -eps 0.01 power
//	pwlgen -list
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-pwl/pwl"
)

type activationEntry struct {
	name    string
	hasP    bool
	build   func(p, scale, shift float64) pwl.Activation
	lower   float64
	upper   float64
	epsHint float64
}

var registry = []activationEntry{
	{"sigmoid", false, func(float64, float64, float64) pwl.Activation { return pwl.NewSigmoid() }, -10, 10, 0.005},
	{"tanh", false, func(float64, float64, float64) pwl.Activation { return pwl.NewTanh() }, -5, 5, 0.005},
	{"exp", false, func(float64, float64, float64) pwl.Activation { return pwl.NewExp() }, -4, 10.4, 0.01},
	{"log", false, func(float64, float64, float64) pwl.Activation { return pwl.NewLog() }, 0.01, 100, 0.01},
	{"softsign", false, func(float64, float64, float64) pwl.Activation { return pwl.NewSoftSign() }, -10, 10, 0.005},
	{"power", true, func(p, scale, shift float64) pwl.Activation { return pwl.NewPower(p, scale, shift) }, -1, 1, 0.01},
	{"identity", false, func(float64, float64, float64) pwl.Activation { return pwl.NewIdentity() }, -1, 1, 0.01},
}

func main() {
	lower := flag.Float64("lower", 0, "domain lower bound L")
	upper := flag.Float64("upper", 0, "domain upper bound U")
	eps := flag.Float64("eps", 0, "maximum absolute error budget")
	p := flag.Float64("p", 2, "exponent for the power activation")
	scale := flag.Float64("scale", 1, "scale operand for the power activation: (scale*x+shift)^p")
	shift := flag.Float64("shift", 0, "shift operand for the power activation")
	useDefaults := flag.Bool("defaults", false, "use each activation's canonical example domain/eps when -lower/-upper/-eps are left at 0")
	list := flag.Bool("list", false, "list available activation names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: pwlgen [flags] <activation>\n\n")
		fmt.Fprintf(os.Stderr, "Prints the segment table the core generates for <activation>.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  pwlgen -lower -10 -upper 10 -eps 0.005 sigmoid\n")
		fmt.Fprintf(os.Stderr, "  pwlgen -p 2 -lower -1 -upper 1 -eps 0.01 power\n")
		fmt.Fprintf(os.Stderr, "  pwlgen -defaults tanh\n")
		fmt.Fprintf(os.Stderr, "  pwlgen -list\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	args := flag.Args()
	if len(args) != 1 {
		flag.Usage()
		os.Exit(2)
	}

	name := strings.ToLower(strings.TrimSpace(args[0]))
	entry, ok := lookup(name)
	if !ok {
		fmt.Fprintf(os.Stderr, "error: unknown activation %q (use -list to see available)\n", name)
		os.Exit(1)
	}

	l, u, e := *lower, *upper, *eps
	if *useDefaults && l == 0 && u == 0 {
		l, u = entry.lower, entry.upper
	}
	if *useDefaults && e == 0 {
		e = entry.epsHint
	}
	if l == 0 && u == 0 {
		l, u = entry.lower, entry.upper
	}
	if e == 0 {
		e = entry.epsHint
	}

	act := entry.build(*p, *scale, *shift)

	segs, err := pwl.Approximate(act, l, u, e)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	printSegments(name, l, u, e, segs)
}

func printList() {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Println(n)
	}
}

func lookup(name string) (activationEntry, bool) {
	for _, e := range registry {
		if e.name == name {
			return e, true
		}
	}
	return activationEntry{}, false
}

func printSegments(name string, lower, upper, eps float64, segs pwl.Segments) {
	fmt.Printf("activation=%s domain=[%g, %g] eps_budget=%g segments=%d\n\n", name, lower, upper, eps, len(segs)-1)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "i\talpha\tm\tb\n")
	fmt.Fprintf(tw, "-\t-----\t-\t-\n")
	for i, s := range segs {
		if i == len(segs)-1 {
			fmt.Fprintf(tw, "%d\t%.10g\t(terminal)\t(terminal)\n", i, s.Alpha)
			continue
		}
		fmt.Fprintf(tw, "%d\t%.10g\t%.10g\t%.10g\n", i, s.Alpha, s.M, s.B)
	}
	_ = tw.Flush()
}
