package nogo

import (
	"runtime"

	"twenty48nogo/internal/boardnogo"
	"twenty48nogo/internal/mcts"

	"golang.org/x/sync/errgroup"
)

// NumWorkers returns the worker count for root parallelization: one per
// hardware thread (§4.B3 "spawns one worker per hardware thread"),
// generalizing the original's omp_get_num_procs().
func NumWorkers() int {
	return runtime.GOMAXPROCS(0)
}

// RunParallel fans out workers independent root-parallel MCTS trees, each
// seeded from baseSeed plus its own index so a fixed baseSeed reproduces
// the same vote histogram (§8 property 6). It aggregates the workers'
// chosen moves by majority vote, ties broken toward the lowest position
// index, and returns -1 if every worker abstained (§4.B3, S6).
//
// Grounded on the OpenMP fan-out/join in
// original_source/hollow_nogo_Parallel_MCTS/agent.h's take_action, using
// golang.org/x/sync/errgroup in place of the teacher's sync.WaitGroup join.
// Workers always return nil, so the returned error is always nil; a panic
// in a worker is not recovered.
func RunParallel(state *boardnogo.Board, n, workers int, baseSeed uint64, perspective mcts.Perspective) (int, error) {
	votes := make([]int, workers)

	var g errgroup.Group
	for i := 0; i < workers; i++ {
		i := i
		g.Go(func() error {
			tree := mcts.NewTree(state, baseSeed+uint64(i), perspective)
			votes[i] = tree.Run(n)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return -1, err
	}

	var histogram [boardnogo.Cells]int
	for _, v := range votes {
		if v >= 0 {
			histogram[v]++
		}
	}

	best, bestCount := -1, 0
	for pos, count := range histogram {
		if count > bestCount {
			best, bestCount = pos, count
		}
	}
	return best, nil
}
