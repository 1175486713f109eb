package scheduler

import (
	"sort"

	"github.com/avelarde/planlevel/internal/domain"
)

// FindUnresolved runs a Kahn pre-check over the dependency graph and
// returns the ids of tasks that can never become ready: members of a
// dependency cycle, tasks downstream of one, and tasks referencing ids
// absent from the task set. Classifying these up front is cheaper and
// more diagnosable than letting the leveling loop stall on them.
func FindUnresolved(tasks []domain.Task) map[int]bool {
	known := make(map[int]bool, len(tasks))
	for _, t := range tasks {
		known[t.ID] = true
	}

	indegree := make(map[int]int, len(tasks))
	successors := make(map[int][]int)
	for _, t := range tasks {
		indegree[t.ID] = 0
	}
	for _, t := range tasks {
		for _, dep := range t.DependsOn {
			if !known[dep] {
				// A missing predecessor never completes; treated
				// like an edge that can never be satisfied.
				indegree[t.ID]++
				continue
			}
			indegree[t.ID]++
			successors[dep] = append(successors[dep], t.ID)
		}
	}

	queue := make([]int, 0, len(tasks))
	for id, deg := range indegree {
		if deg == 0 {
			queue = append(queue, id)
		}
	}
	sort.Ints(queue)

	resolved := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		resolved++
		for _, succ := range successors[id] {
			indegree[succ]--
			if indegree[succ] == 0 {
				queue = append(queue, succ)
			}
		}
	}

	if resolved == len(tasks) {
		return nil
	}

	unresolved := make(map[int]bool)
	for id, deg := range indegree {
		if deg > 0 {
			unresolved[id] = true
		}
	}
	return unresolved
}
