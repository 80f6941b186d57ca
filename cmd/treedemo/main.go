// Command treedemo fills an ordered tree with random integers and prints
// its traversals, extremes and heights.
package main

import (
	"flag"
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"ordtree_code/demo"
)

func main() {
	cfg := demo.DefaultConfig()
	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	flag.IntVar(&cfg.Iterations, "n", cfg.Iterations, "values to insert per round (0 asks each round)")
	flag.IntVar(&cfg.MaxValue, "max", cfg.MaxValue, "largest value to insert")
	flag.Uint64Var(&cfg.Seed, "seed", 0, "random seed (0 picks one)")
	flag.BoolVar(&cfg.Color, "color", term.IsTerminal(int(os.Stdout.Fd())), "color section headings")
	flag.BoolVar(&cfg.Prompt, "prompt", interactive, "ask whether to run another round")
	dot := flag.String("dot", "", "write the last tree in Graphviz DOT format to this file")
	verbose := flag.Bool("v", false, "log debug messages")
	flag.Parse()

	log := logrus.New()
	log.SetOutput(os.Stderr)
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	s, err := demo.NewSession(cfg, os.Stdin, os.Stdout, log)
	if err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}
	tree, err := s.Run()
	if err != nil {
		log.WithError(err).Fatal("demo failed")
	}
	if *dot == "" || tree == nil {
		return
	}
	f, err := os.Create(*dot)
	if err != nil {
		log.WithError(err).Fatal("cannot create DOT file")
	}
	if err := tree.Dot(f); err != nil {
		f.Close()
		log.WithError(err).Fatal("cannot write DOT file")
	}
	if err := f.Close(); err != nil {
		log.WithError(err).Fatal("cannot write DOT file")
	}
	log.WithField("file", *dot).Info("wrote tree structure")
}
