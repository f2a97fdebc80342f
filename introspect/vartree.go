package introspect

import (
	"fmt"
	"strings"

	"github.com/richinsley/glreflect/glenum"
	"github.com/richinsley/glreflect/graphics"
	"github.com/richinsley/glreflect/logging"
	"github.com/richinsley/glreflect/reflection"
)

// noList marks a missing sibling list, e.g. buffer variables have no
// default block to fall back to.
const noList = -1

type treeNode struct {
	c       reflection.ShaderConstant
	members int
}

// varTree is an arena of constants. Nodes are addressed by index and each
// sibling list by a list id, so appending never invalidates a position
// held while folding a name.
type varTree struct {
	nodes []treeNode
	lists [][]int
}

func newVarTree() *varTree {
	return &varTree{}
}

func (t *varTree) newList() int {
	t.lists = append(t.lists, nil)
	return len(t.lists) - 1
}

// add appends c to list and returns the node index. Every node gets its
// own (possibly empty) member list.
func (t *varTree) add(list int, c reflection.ShaderConstant) int {
	members := t.newList()
	t.nodes = append(t.nodes, treeNode{c: c, members: members})
	idx := len(t.nodes) - 1
	t.lists[list] = append(t.lists[list], idx)
	return idx
}

func (t *varTree) find(list int, name string) int {
	for _, idx := range t.lists[list] {
		if t.nodes[idx].c.Name == name {
			return idx
		}
	}
	return -1
}

func (t *varTree) empty(list int) bool { return len(t.lists[list]) == 0 }

// build materialises list as a sorted constant tree.
func (t *varTree) build(list int) []reflection.ShaderConstant {
	ids := t.lists[list]
	if len(ids) == 0 {
		return nil
	}
	out := make([]reflection.ShaderConstant, 0, len(ids))
	for _, idx := range ids {
		c := t.nodes[idx].c
		c.Members = t.build(t.nodes[idx].members)
		out = append(out, c)
	}
	reflection.SortConstants(out)
	return out
}

// varRecord is one flat entry from the UNIFORM or BUFFER_VARIABLE interface.
type varRecord struct {
	name      string
	typ       uint32
	location  int32
	block     int32
	arraySize int32
	offset    int32
	rowMajor  bool
}

var varProps = []uint32{
	glenum.Type,
	glenum.NameLength,
	glenum.Location,
	glenum.BlockIndex,
	glenum.ArraySize,
	glenum.Offset,
	glenum.IsRowMajor,
}

func queryVarRecord(drv graphics.Driver, program, iface, index uint32) varRecord {
	props := varProps
	if iface == glenum.BufferVariable {
		// LOCATION is not a valid property for buffer variables, which
		// always report an offset anyway
		props = append([]uint32(nil), varProps...)
		props[2] = glenum.Offset
	}
	v := drv.GetProgramResourceiv(program, iface, index, props)
	return varRecord{
		name:      drv.GetProgramResourceName(program, iface, index),
		typ:       uint32(v[0]),
		location:  v[2],
		block:     v[3],
		arraySize: v[4],
		offset:    v[5],
		rowMajor:  v[6] > 0,
	}
}

// reconstructVar folds one flat record into the tree. Records of opaque
// type are skipped without error.
func reconstructVar(drv graphics.Driver, program, iface, index uint32, t *varTree, blockLists []int, defaultList int) {
	rec := queryVarRecord(drv, program, iface, index)
	if err := t.fold(rec, blockLists, defaultList); err != nil {
		logging.LogWarn("dropping %s %q: %v", glenum.Name(iface), rec.name, err)
	}
}

func leafConstant(rec varRecord) (reflection.ShaderConstant, error) {
	nt, _ := glenum.LookupNumeric(rec.typ)

	elements := rec.arraySize
	if elements < 1 {
		elements = 1
	}
	c := reflection.ShaderConstant{
		Type: reflection.TypeDescriptor{
			Type:            nt.Kind,
			Rows:            nt.Rows,
			Cols:            nt.Cols,
			Elements:        uint32(elements),
			RowMajorStorage: rec.rowMajor,
			Name:            nt.Name,
		},
	}

	switch {
	case rec.offset == -1 && rec.location >= 0:
		c.Reg = reflection.Register{Vec: uint32(rec.location), Comp: 0}
	case rec.offset >= 0:
		if rec.offset%4 != 0 {
			return c, fmt.Errorf("offset %d: %w", rec.offset, ErrMisalignedOffset)
		}
		c.Reg = reflection.Register{Vec: uint32(rec.offset / 16), Comp: uint32(rec.offset/4) % 4}
	default:
		c.Reg = reflection.UnassignedRegister
	}
	return c, nil
}

// fold attaches rec to the tree. "a.b[2].c" creates or updates struct nodes
// a and b and appends leaf c under b; a trailing "[0]" marks the leaf itself
// as an array.
func (t *varTree) fold(rec varRecord, blockLists []int, defaultList int) error {
	if _, ok := glenum.LookupNumeric(rec.typ); !ok {
		// samplers, images and atomics are resources, not constants
		return nil
	}
	leaf, err := leafConstant(rec)
	if err != nil {
		return err
	}

	name := rec.name
	if strings.HasSuffix(name, "[0]") {
		name = name[:len(name)-3]
	} else {
		leaf.Type.Elements = 0
	}

	list := defaultList
	if rec.block != -1 {
		list = noList
		if rec.block >= 0 && int(rec.block) < len(blockLists) {
			list = blockLists[rec.block]
		}
	}
	if list == noList {
		return fmt.Errorf("block index %d: %w", rec.block, ErrOrphanVariable)
	}

	for {
		cut := strings.IndexAny(name, ".[")
		if cut < 0 {
			break
		}
		base := name[:cut]
		isArray := name[cut] == '['
		rest := name[cut+1:]

		arrayIdx := 0
		if isArray {
			digits := 0
			for digits < len(rest) && rest[digits] >= '0' && rest[digits] <= '9' {
				arrayIdx = arrayIdx*10 + int(rest[digits]-'0')
				digits++
			}
			if digits >= len(rest) || rest[digits] != ']' {
				return fmt.Errorf("%q: %w", rec.name, ErrMalformedName)
			}
			rest = rest[digits+1:]
			if !strings.HasPrefix(rest, ".") {
				return fmt.Errorf("%q: %w", rec.name, ErrNakedArrayMember)
			}
			rest = rest[1:]
		}

		var elements uint32
		if isArray {
			elements = uint32(arrayIdx + 1)
		}

		if idx := t.find(list, base); idx >= 0 {
			n := &t.nodes[idx].c
			if elements > n.Type.Elements {
				n.Type.Elements = elements
			}
			if leaf.Reg.Vec < n.Reg.Vec {
				n.Reg.Vec = leaf.Reg.Vec
			}
			list = t.nodes[idx].members
		} else {
			idx = t.add(list, reflection.ShaderConstant{
				Name: base,
				Reg:  reflection.Register{Vec: leaf.Reg.Vec, Comp: 0},
				Type: reflection.TypeDescriptor{
					Type:     leaf.Type.Type,
					Elements: elements,
					Name:     "struct",
				},
			})
			list = t.nodes[idx].members
		}

		// element 0 already populated the members; later elements only
		// grow the count
		if arrayIdx > 0 {
			return nil
		}
		name = rest
	}

	leaf.Name = name
	t.add(list, leaf)
	return nil
}
