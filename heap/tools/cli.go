package main

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	app := &cli.Command{
		Name:  "heap_tools",
		Usage: "explore binary heap behavior from the command line",
		Commands: []*cli.Command{
			{
				Name:      "drain",
				Usage:     "heapify integer arguments and print them in priority order",
				ArgsUsage: "value [value ...]",
				Action:    drainHeap,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "min",
						Usage: "build a min-heap instead of a max-heap",
					},
				},
			},
			{
				Name:      "visualize",
				Usage:     "heapify integer arguments and print the tree level by level",
				ArgsUsage: "value [value ...]",
				Action:    visualizeHeap,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "min",
						Usage: "build a min-heap instead of a max-heap",
					},
				},
			},
			{
				Name:   "schedule",
				Usage:  "run a priority scheduling demo over randomly prioritized tasks",
				Action: scheduleTasks,
				Flags: []cli.Flag{
					&cli.UintFlag{
						Name:        "tasks",
						DefaultText: "10",
						Value:       10,
						Usage:       "number of tasks to schedule",
					},
					&cli.IntFlag{
						Name:        "seed",
						DefaultText: "1",
						Value:       1,
						Usage:       "seed for the priority generator",
					},
				},
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
