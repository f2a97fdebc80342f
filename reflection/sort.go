package reflection

import (
	"sort"
	"strings"
)

// SortConstants orders vars by register, recursively. The sort is stable so
// applying it repeatedly gives the same result.
func SortConstants(vars []ShaderConstant) {
	if len(vars) == 0 {
		return
	}
	sort.SliceStable(vars, func(i, j int) bool {
		return vars[i].Reg.Less(vars[j].Reg)
	})
	for i := range vars {
		SortConstants(vars[i].Members)
	}
}

// FlattenNames walks a variable tree and produces the flat names a driver
// would report for the first element of every array: array leaves end in
// "[0]", arrays of structs expand as "name[0].member".
func FlattenNames(vars []ShaderConstant) []string {
	var out []string
	for i := range vars {
		flatten(&vars[i], "", &out)
	}
	return out
}

func flatten(v *ShaderConstant, prefix string, out *[]string) {
	var sb strings.Builder
	sb.WriteString(prefix)
	sb.WriteString(v.Name)
	if v.Type.Elements > 0 {
		sb.WriteString("[0]")
	}
	name := sb.String()

	if len(v.Members) == 0 {
		*out = append(*out, name)
		return
	}
	for i := range v.Members {
		flatten(&v.Members[i], name+".", out)
	}
}
