// Package demo runs the interactive ordered tree demonstration: it fills a
// tree with random integers, prints its traversals, extremes and heights,
// and repeats while the user asks for more.
package demo

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"

	"ordtree_code/ordtree"
)

type Session struct {
	cfg     Config
	in      *bufio.Reader
	out     io.Writer
	log     logrus.FieldLogger
	rnd     *rand.Rand
	seed    uint64
	heading *color.Color
}

// NewSession validates cfg and prepares a session reading answers from in
// and printing results to out.
func NewSession(cfg Config, in io.Reader, out io.Writer, log logrus.FieldLogger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("demo config: %w", err)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	heading := color.New(color.FgCyan, color.Bold)
	if !cfg.Color {
		heading.DisableColor()
	}
	return &Session{
		cfg:     cfg,
		in:      bufio.NewReader(in),
		out:     out,
		log:     log,
		rnd:     rand.New(rand.NewPCG(seed, seed>>1|1)),
		seed:    seed,
		heading: heading,
	}, nil
}

// Run plays rounds until the user declines another one or input ends, and
// returns the tree of the last round.
func (s *Session) Run() (*ordtree.Tree[int], error) {
	var last *ordtree.Tree[int]
	for round := 1; ; round++ {
		n := s.cfg.Iterations
		if n == 0 {
			var err error
			if n, err = s.askIterations(); err != nil {
				if errors.Is(err, io.EOF) {
					return last, nil
				}
				return last, err
			}
		}
		tree, err := s.Round(round, n)
		if err != nil {
			return tree, err
		}
		last = tree
		if !s.cfg.Prompt {
			return last, nil
		}
		again, err := s.askAgain()
		if err != nil && !errors.Is(err, io.EOF) {
			return last, err
		}
		if !again {
			return last, nil
		}
	}
}

// Round inserts n random values into a fresh tree and prints the report.
func (s *Session) Round(round, n int) (*ordtree.Tree[int], error) {
	log := s.log.WithFields(logrus.Fields{
		"round": round,
		"seed":  s.seed,
		"count": n,
	})
	log.Info("starting round")
	tree := ordtree.New[int]()
	for i := 0; i < n; i++ {
		v := s.rnd.IntN(s.cfg.MaxValue + 1)
		fmt.Fprintf(s.out, "Inserting: %d\n", v)
		if err := tree.Insert(v); err != nil {
			return tree, err
		}
	}
	log.WithField("height", tree.Height()).Debug("tree built")
	return tree, s.report(tree)
}

func (s *Session) report(tree *ordtree.Tree[int]) error {
	for _, order := range []ordtree.Order{ordtree.PreOrder, ordtree.InOrder, ordtree.PostOrder} {
		s.heading.Fprintf(s.out, "\n******%s********\n", strings.ToUpper(order.String()))
		fmt.Fprintln(s.out, join(tree.Values(order)))
	}
	highest, err := tree.Retrieve(tree.Highest())
	if err != nil {
		return err
	}
	lowest, err := tree.Retrieve(tree.Lowest())
	if err != nil {
		return err
	}
	lh, err := tree.LeftHeight()
	if err != nil {
		return err
	}
	rh, err := tree.RightHeight()
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "\nThe highest number of the tree is: %d\n", highest)
	fmt.Fprintf(s.out, "The lowest number of the tree is: %d\n", lowest)
	fmt.Fprintf(s.out, "The height of the tree is: %d\n", tree.Height())
	fmt.Fprintf(s.out, "The left height of the tree is: %d\n", lh)
	fmt.Fprintf(s.out, "The right height of the tree is: %d\n", rh)
	return nil
}

func join(vs []int) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

func (s *Session) askIterations() (int, error) {
	fmt.Fprint(s.out, "Enter the number of iterations: ")
	line, err := s.readLine()
	if err != nil && line == "" {
		return 0, err
	}
	n, err := strconv.Atoi(line)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid number of iterations %q", line)
	}
	return n, nil
}

// askAgain reports whether another round was requested. Anything but an
// answer starting with n or N counts as yes.
func (s *Session) askAgain() (bool, error) {
	fmt.Fprint(s.out, "\nDo you want to try again? [y/n]: ")
	line, err := s.readLine()
	if err != nil && line == "" {
		return false, err
	}
	return !strings.HasPrefix(strings.ToUpper(line), "N"), nil
}

func (s *Session) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	return strings.TrimSpace(line), err
}
