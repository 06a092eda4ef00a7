package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/joshuapare/rawvec/alloc"
	"github.com/joshuapare/rawvec/cmd/vecctl/logger"
	"github.com/joshuapare/rawvec/vector"
)

var (
	pushCapacity   int
	pushFixed      bool
	pushGrowth     string
	pushBackend    string
	pushShrink     bool
	pushResize     int
	pushSingleLine bool
	pushMetrics    bool
)

// defaultValues are appended when no values are given on the command line.
var defaultValues = []int64{2, 3}

func init() {
	cmd := newPushCmd()
	cmd.Flags().IntVarP(&pushCapacity, "capacity", "c", 1, "Initial capacity in slots")
	cmd.Flags().BoolVar(&pushFixed, "fixed", false, "Forbid growth on append")
	cmd.Flags().StringVarP(&pushGrowth, "growth", "g", "double", "Growth policy: double, identity, chunk:N, hybrid:N")
	cmd.Flags().StringVar(&pushBackend, "backend", "heap", "Slot storage: heap or mmap")
	cmd.Flags().BoolVar(&pushShrink, "shrink", false, "Shrink capacity to size after appending")
	cmd.Flags().IntVar(&pushResize, "resize", 0, "Resize capacity to N slots after appending")
	cmd.Flags().BoolVar(&pushSingleLine, "single-line", false, "Print the verbose form on one line")
	cmd.Flags().BoolVar(&pushMetrics, "metrics", false, "Print allocator metrics in Prometheus format")
	rootCmd.AddCommand(cmd)
}

func newPushCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "push [values...]",
		Short: "Append integers to a new vector and print it",
		Long: `The push command creates a vector, appends the given integers in order,
optionally shrinks or resizes it, and prints the verbose and compact forms.
Without values it appends 2 and 3.

Example:
  vecctl push
  vecctl push 2 3 2 3 2 3 --shrink
  vecctl push 1 2 3 --capacity 4 --growth chunk:4 --resize 10
  vecctl push 1 2 --capacity 1 --fixed
  vecctl push 5 6 7 --backend mmap --metrics`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPush(args, cmd.Flags().Changed("resize"))
		},
	}
	return cmd
}

func runPush(args []string, resize bool) (err error) {
	values, err := parseValues(args)
	if err != nil {
		return err
	}
	grow, err := parseGrowth(pushGrowth)
	if err != nil {
		return err
	}
	backend, err := newBackend(pushBackend)
	if err != nil {
		return err
	}
	tr := alloc.NewTracking(backend)

	v, err := vector.New[int64](pushCapacity, pushFixed, grow, &vector.Options[int64]{
		Allocator: tr,
		Logger:    logger.L,
	})
	if err != nil {
		return fmt.Errorf("failed to create vector: %w", err)
	}
	defer func() {
		if cerr := v.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	logger.Debug("vector created", "capacity", pushCapacity, "fixed", pushFixed,
		"growth", pushGrowth, "backend", pushBackend)

	for _, x := range values {
		if err := v.Append(x); err != nil {
			return fmt.Errorf("append %d: %w", x, err)
		}
	}
	if pushShrink {
		if err := v.ShrinkToFit(); err != nil {
			return fmt.Errorf("shrink: %w", err)
		}
	}
	if resize {
		if err := v.Resize(pushResize); err != nil {
			return fmt.Errorf("resize to %d: %w", pushResize, err)
		}
	}

	if pushSingleLine {
		printInfo("%+v\n", v)
	} else {
		printInfo("%#v\n", v)
	}
	printInfo("%v\n", v)

	if pushMetrics {
		writeMetrics(stdout, tr.Stats(), v.Size(), v.Capacity())
	}
	return nil
}

func parseValues(args []string) ([]int64, error) {
	if len(args) == 0 {
		return defaultValues, nil
	}
	values := make([]int64, 0, len(args))
	for _, a := range args {
		x, err := strconv.ParseInt(a, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: must be an integer", a)
		}
		values = append(values, x)
	}
	return values, nil
}

func newBackend(name string) (alloc.Allocator[int64], error) {
	switch name {
	case "heap":
		return alloc.Heap[int64]{}, nil
	case "mmap":
		m, err := alloc.NewMmap[int64]()
		if err != nil {
			return nil, err
		}
		if !m.Mapped() {
			logger.Warn("mmap not available on this platform, using heap-backed regions")
		}
		return m, nil
	default:
		return nil, fmt.Errorf("unknown backend %q (want heap or mmap)", name)
	}
}
