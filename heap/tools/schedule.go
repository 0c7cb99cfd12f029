package main

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/navijation/structures/heap"
	"github.com/urfave/cli/v3"
)

type scheduledTask struct {
	id       uuid.UUID
	priority int
}

func scheduleTasks(_ context.Context, cmd *cli.Command) error {
	count := cmd.Uint("tasks")
	rng := rand.New(rand.NewSource(cmd.Int("seed")))

	queue := heap.New(func(a, b scheduledTask) bool {
		return a.priority > b.priority
	})
	for range count {
		queue.Push(scheduledTask{
			id:       uuid.New(),
			priority: rng.Intn(100),
		})
	}

	fmt.Printf("Dispatching %d tasks by priority:\n", count)
	for {
		task, exists := queue.Pop().Unpack()
		if !exists {
			return nil
		}
		fmt.Printf("  - priority %2d: task %s\n", task.priority, task.id)
	}
}
