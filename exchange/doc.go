// Package exchange implements the small-group permutation swapper: given
// up to four candidate leaf cells and their targets, it enumerates every
// permutation of the cells' current assignments, scores each by summed
// distance to the targets, and applies whichever permutation scores
// strictly lowest (the identity permutation wins any tie, since it is
// always evaluated first and only a strictly lower score replaces it).
package exchange
