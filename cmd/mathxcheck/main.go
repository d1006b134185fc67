// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command mathxcheck sweeps a domain and reports how far the dependency-free
// mathx kernel strays from the host-backed one.
//
// Usage:
//
//	mathxcheck -ops sin,cos -lo -100 -hi 100 -n 1000000
//	mathxcheck -ops all -tol 2e-4      # exit 1 if any op exceeds the tolerance
//
// Each op prints one row: samples, max absolute error, the input where it
// occurred, and the mean absolute error.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/ajroetker/go-mathx/mathx"
	"github.com/ajroetker/go-mathx/mathx/contrib/accuracy"
	"github.com/ajroetker/go-mathx/mathx/contrib/workerpool"
)

var (
	ops     = flag.String("ops", "all", "Comma-separated ops ("+joinOps(accuracy.Ops())+") or 'all'")
	lo      = flag.Float64("lo", -10, "Lower bound of the sampled domain")
	hi      = flag.Float64("hi", 10, "Upper bound of the sampled domain")
	samples = flag.Int("n", 100000, "Number of evenly spaced samples")
	workers = flag.Int("workers", 0, "Worker goroutines (default: GOMAXPROCS)")
	tol     = flag.Float64("tol", 0, "Fail if any op's max abs error exceeds this (0 disables)")
)

func main() {
	flag.Parse()

	opList, err := parseOps(*ops)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		flag.Usage()
		os.Exit(1)
	}

	pool := workerpool.New(*workers)
	defer pool.Close()

	reports, err := run(pool, opList, float32(*lo), float32(*hi), *samples)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("selected kernel: %s\n\n", mathx.CurrentName())
	printReports(os.Stdout, reports)

	if failed := exceeding(reports, *tol); len(failed) > 0 {
		fmt.Fprintf(os.Stderr, "Error: max error above %g for: %s\n", *tol, joinOps(failed))
		os.Exit(1)
	}
}

// parseOps expands "all" and validates a comma-separated op list.
func parseOps(s string) ([]accuracy.Op, error) {
	if s == "" || s == "all" {
		return accuracy.Ops(), nil
	}
	var out []accuracy.Op
	for _, name := range strings.Split(s, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		op, err := accuracy.ParseOp(name)
		if err != nil {
			return nil, err
		}
		out = append(out, op)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no ops specified")
	}
	return out, nil
}

// run compares the soft kernel against the host kernel for every op.
func run(pool *workerpool.Pool, opList []accuracy.Op, lo, hi float32, n int) ([]accuracy.Report, error) {
	reports := make([]accuracy.Report, 0, len(opList))
	for _, op := range opList {
		r, err := accuracy.Compare(pool, mathx.Host{}, mathx.Soft{}, op, lo, hi, n)
		if err != nil {
			return nil, fmt.Errorf("compare %s: %w", op, err)
		}
		reports = append(reports, r)
	}
	return reports, nil
}

func printReports(w io.Writer, reports []accuracy.Report) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "OP\tSAMPLES\tMAX ERR\tWORST INPUT\tMEAN ERR")
	for _, r := range reports {
		fmt.Fprintf(tw, "%s\t%d\t%.3g\t%v\t%.3g\n", r.Op, r.Samples, r.MaxAbsErr, r.WorstInput, r.MeanAbsErr)
	}
	tw.Flush()
}

// exceeding returns the ops whose max error is above tol. tol <= 0 disables
// the check.
func exceeding(reports []accuracy.Report, tol float64) []accuracy.Op {
	if tol <= 0 {
		return nil
	}
	var failed []accuracy.Op
	for _, r := range reports {
		if r.MaxAbsErr > tol {
			failed = append(failed, r.Op)
		}
	}
	return failed
}

func joinOps(list []accuracy.Op) string {
	names := make([]string, len(list))
	for i, op := range list {
		names[i] = string(op)
	}
	return strings.Join(names, ",")
}
