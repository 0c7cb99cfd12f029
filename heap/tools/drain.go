package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/navijation/structures/heap"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
)

func drainHeap(_ context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() == 0 {
		return errors.New("usage: drain value [value ...]")
	}

	values, err := parseIntArgs(cmd.Args().Slice())
	if err != nil {
		return err
	}

	h := heap.From(values, orderFromFlags(cmd))
	for {
		value, exists := h.Pop().Unpack()
		if !exists {
			return nil
		}
		fmt.Println(value)
	}
}

func orderFromFlags(cmd *cli.Command) func(a, b int) bool {
	if cmd.Bool("min") {
		return func(a, b int) bool { return a < b }
	}
	return func(a, b int) bool { return a > b }
}

func parseIntArgs(args []string) (out []int, _ error) {
	for _, arg := range args {
		value, err := strconv.Atoi(arg)
		if err != nil {
			return nil, errors.Wrapf(err, "argument %q is not an integer", arg)
		}
		out = append(out, value)
	}
	return out, nil
}
