/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Command randdemo draws values with the sample package and prints them
// together with a histogram of Gaussian samples.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/fentec-project/randutil/data"
	"github.com/fentec-project/randutil/sample"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/stat"
)

type config struct {
	n       int
	samples int
	picks   int
	rows    int
	cols    int
	bins    int
}

func newLogger(json bool) zerolog.Logger {
	if json {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}
	return zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = os.Stderr
		w.TimeFormat = "15:04:05.000"
	})).With().Timestamp().Logger()
}

func printElements[T any](w io.Writer, label string, vals []T) {
	fmt.Fprint(w, label)
	for _, v := range vals {
		fmt.Fprint(w, v, ", ")
	}
	fmt.Fprintln(w)
}

func run(w io.Writer, log zerolog.Logger, g *sample.Generator, cfg config) error {
	res, err := sample.RandInt(g, int16(0), int16(10))
	if err != nil {
		return errors.Wrap(err, "cannot draw integer")
	}
	fmt.Fprintf(w, "res: %d\n", res)

	ints, err := sample.RandInts(g, int16(0), int16(10), cfg.n)
	if err != nil {
		return errors.Wrap(err, "cannot draw integers")
	}
	printElements(w, "vec values: ", ints)

	reals, err := sample.RandReals(g, 0.0, 10.0, cfg.n)
	if err != nil {
		return errors.Wrap(err, "cannot draw reals")
	}
	printElements(w, "rand res vec: ", reals)

	gauss, err := sample.Randns(g, 0.0, 1.0, cfg.n)
	if err != nil {
		return errors.Wrap(err, "cannot draw gaussians")
	}
	printElements(w, "gauss dist res: ", gauss)

	picked, err := sample.UniqueSample(gauss, cfg.picks)
	if err != nil {
		return errors.Wrap(err, "cannot sample gaussians")
	}
	printElements(w, "gauss dist sampled: ", picked)

	digits, err := sample.NewUniformRange(g, 0, 10)
	if err != nil {
		return err
	}
	mat, err := data.NewRandomMatrix[int](cfg.rows, cfg.cols, digits)
	if err != nil {
		return errors.Wrap(err, "cannot draw matrix")
	}
	sums, err := mat.MulVec(data.NewConstantVector(mat.Cols(), 1))
	if err != nil {
		return errors.Wrap(err, "cannot sum matrix rows")
	}
	printElements(w, "matrix row sums: ", sums)

	normal, err := sample.NewNormal(g, 0.0, 1.0)
	if err != nil {
		return err
	}
	large, err := data.NewRandomVector[float64](cfg.samples, normal)
	if err != nil {
		return errors.Wrap(err, "cannot draw gaussian vector")
	}
	mean, variance := stat.MeanVariance(large, nil)
	log.Info().
		Int("samples", len(large)).
		Float64("mean", mean).
		Float64("variance", variance).
		Msg("gaussian vector")

	return large.Hist(w, cfg.bins)
}

func main() {
	seed := flag.Uint64("seed", 0, "seed of the generator")
	n := flag.Int("n", 10, "number of values drawn per distribution")
	samples := flag.Int("samples", 500, "number of gaussian values in the histogram")
	picks := flag.Int("picks", 3, "number of values picked without replacement")
	rows := flag.Int("rows", 3, "number of rows of the random matrix")
	cols := flag.Int("cols", 4, "number of columns of the random matrix")
	bins := flag.Int("bins", 11, "number of histogram bins")
	jsonLog := flag.Bool("json", false, "log in JSON format")
	flag.Parse()

	log := newLogger(*jsonLog)
	log.Debug().Uint64("seed", *seed).Msg("starting")

	cfg := config{n: *n, samples: *samples, picks: *picks, rows: *rows, cols: *cols, bins: *bins}
	if err := run(os.Stdout, log, sample.NewSeeded(*seed), cfg); err != nil {
		log.Fatal().Err(err).Msg("demo failed")
	}
}
