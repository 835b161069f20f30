// Package maze generates weighted grid worlds and searches them with a
// best-first grid search.
//
// It exposes three main entry points:
//
//   - Generate: build a random world with blocked and extra-cost cells.
//   - FindPath: run the search to completion and get a Result.
//   - Stepper: iterate the search one expansion at a time to drive UIs or debugging tools.
//
// The search never relaxes a node that was already discovered: the first
// node to reach a position keeps it, even if a cheaper route shows up later.
// It is therefore a cost-ordered greedy search rather than textbook A*, and
// the path it returns is not guaranteed to be the cheapest one.
package maze
