package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/navijation/structures/heap"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
)

func visualizeHeap(_ context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() == 0 {
		return errors.New("usage: visualize value [value ...]")
	}

	values, err := parseIntArgs(cmd.Args().Slice())
	if err != nil {
		return err
	}

	h := heap.From(values, orderFromFlags(cmd))
	items := h.Items()

	fmt.Printf("Layout: %v\n\n", items)
	for depth, levelStart := 0, 0; levelStart < len(items); depth++ {
		levelEnd := min(levelStart*2+1, len(items))
		for i := levelStart; i < levelEnd; i++ {
			fmt.Printf("%s#%d: %d\n", strings.Repeat("  ", depth), i, items[i])
		}
		levelStart = levelStart*2 + 1
	}

	return nil
}
