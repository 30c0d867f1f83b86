// Package iters enumerates fixed-length groups drawn from an ordered list of
// string values and joins each group into a single string.
//
// Four modes are supported:
//
//	ModeCombinations                  ab ac bc
//	ModeCombinationsWithReplacement   aa ab ac bb bc cc
//	ModePermutations                  ab ac ba bc ca cb
//	ModeProduct                       aa ab ac ba bb bc ca cb cc
//
// (values a b c, group size 2). Values are positional: repeated values are
// treated as distinct positions and are never deduplicated. Asking for more
// positions than exist under combinations or permutations yields an empty
// result, never an error.
package iters
