// Package manifest loads declarative generation manifests.
//
// A manifest names a skeleton file and the dispatch groups that fill its
// markers. TOML and YAML are accepted:
//
//	input = "ops.h.in"
//	output = "ops.h"
//	format_script = "clang-format -i"
//
//	[[groups]]
//	marker = "@binary_ops@"
//	template = "${t} add(${t} a, ${t} b);\n"
//
//	[[groups.insert]]
//	key = "t"
//	values = ["int", "float", "double"]
//	mode = "combinations"
//	size = 1
//
// Each group may also carry a "remove" list aligned with "insert"; the
// values it generates are excluded from the insert binding at the same
// position.
package manifest
