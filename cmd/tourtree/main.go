// Command tourtree is a small demonstration driver for the twolevel
// package: it builds a tour over a literal city permutation, applies a
// handful of mutations named on the command line, and prints the
// resulting raw tour and segment sizes. It exists to exercise the package
// from outside its own test suite, not as a solver.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tourtree/twolevel"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var citiesFlag string
	var opsFlag []string

	cmd := &cobra.Command{
		Use:   "tourtree",
		Short: "Build a two-level tree tour and apply a sequence of mutations",
		Long: "tourtree builds a two-level tree tour from a literal permutation of\n" +
			"cities and applies a sequence of --op flags to it, printing the raw\n" +
			"tour and segment sizes after each one.",
		RunE: func(cmd *cobra.Command, args []string) error {
			order, err := parseCities(citiesFlag)
			if err != nil {
				return err
			}
			tree, err := twolevel.NewTree(len(order), order[0])
			if err != nil {
				return err
			}
			tree.SetRawTour(order)

			printState(cmd, tree, "initial")
			for _, op := range opsFlag {
				if err := applyOp(tree, op); err != nil {
					return fmt.Errorf("op %q: %w", op, err)
				}
				printState(cmd, tree, op)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&citiesFlag, "cities", "0,1,2,3,4,5,6,7,8,9", "comma-separated city permutation")
	cmd.Flags().StringArrayVar(&opsFlag, "op", nil, "mutation to apply, e.g. reverse:2,5 or flip:1,2,6,7 or bridge:1,3,5,9")

	return cmd
}

func parseCities(s string) ([]int, error) {
	fields := strings.Split(s, ",")
	order := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("invalid city %q: %w", f, err)
		}
		order[i] = v
	}
	return order, nil
}

// applyOp parses and runs one --op value. Supported forms:
//
//	reverse:a,b   Reverse(a, b)
//	flip:a,b,c,d  Flip(a, b, c, d)
//	bridge:a,b,c,d DoubleBridgeMove(a, b, c, d)
func applyOp(tree *twolevel.Tree, op string) error {
	name, rest, ok := strings.Cut(op, ":")
	if !ok {
		return fmt.Errorf("missing ':' in op %q", op)
	}
	args, err := parseCities(rest)
	if err != nil {
		return err
	}

	switch name {
	case "reverse":
		if len(args) != 2 {
			return fmt.Errorf("reverse wants 2 cities, got %d", len(args))
		}
		tree.Reverse(tree.NodeByCity(args[0]), tree.NodeByCity(args[1]))
	case "flip":
		if len(args) != 4 {
			return fmt.Errorf("flip wants 4 cities, got %d", len(args))
		}
		tree.Flip(tree.NodeByCity(args[0]), tree.NodeByCity(args[1]), tree.NodeByCity(args[2]), tree.NodeByCity(args[3]))
	case "bridge":
		if len(args) != 4 {
			return fmt.Errorf("bridge wants 4 cities, got %d", len(args))
		}
		tree.DoubleBridgeMove(tree.NodeByCity(args[0]), tree.NodeByCity(args[1]), tree.NodeByCity(args[2]), tree.NodeByCity(args[3]))
	default:
		return fmt.Errorf("unknown op %q", name)
	}
	return nil
}

func printState(cmd *cobra.Command, tree *twolevel.Tree, label string) {
	tour := tree.GetRawTour(nil, twolevel.Forward)
	sizes := tree.ActualSegmentSizes(nil)
	fmt.Fprintf(cmd.OutOrStdout(), "%s: tour=%v segments=%v\n", label, tour, sizes)
}
