package introspect

import (
	"errors"
	"reflect"
	"testing"

	"github.com/richinsley/glreflect/glenum"
	"github.com/richinsley/glreflect/reflection"
)

func uniformRec(name string, typ uint32, location int32) varRecord {
	return varRecord{name: name, typ: typ, location: location, block: -1, arraySize: 1, offset: -1}
}

func blockRec(name string, typ uint32, block, offset int32) varRecord {
	return varRecord{name: name, typ: typ, location: -1, block: block, arraySize: 1, offset: offset}
}

func foldAll(t *testing.T, tree *varTree, blocks []int, def int, recs ...varRecord) {
	t.Helper()
	for _, rec := range recs {
		if err := tree.fold(rec, blocks, def); err != nil {
			t.Fatalf("fold %q: %v", rec.name, err)
		}
	}
}

func TestFoldArrayOfStructs(t *testing.T) {
	tree := newVarTree()
	block := tree.newList()
	foldAll(t, tree, []int{block}, noList,
		blockRec("particles[0].pos", glenum.FloatVec4, 0, 0),
		blockRec("particles[0].vel", glenum.FloatVec4, 0, 16),
		blockRec("particles[1].pos", glenum.FloatVec4, 0, 32),
		blockRec("particles[1].vel", glenum.FloatVec4, 0, 48),
	)

	got := tree.build(block)
	if len(got) != 1 {
		t.Fatalf("got %d top-level constants, want 1", len(got))
	}
	p := got[0]
	if p.Name != "particles" || p.Type.Name != "struct" || p.Type.Elements != 2 {
		t.Errorf("particles = %+v", p)
	}
	if p.Reg.Vec != 0 {
		t.Errorf("particles register = %+v, want vec 0", p.Reg)
	}
	if len(p.Members) != 2 {
		t.Fatalf("particles has %d members, want 2", len(p.Members))
	}
	for i, want := range []struct {
		name string
		vec  uint32
	}{{"pos", 0}, {"vel", 1}} {
		m := p.Members[i]
		if m.Name != want.name || m.Reg.Vec != want.vec || m.Type.Cols != 4 || m.Type.Elements != 0 {
			t.Errorf("member %d = %+v, want %s at vec %d", i, m, want.name, want.vec)
		}
	}
}

func TestFoldNestedStructsInGlobals(t *testing.T) {
	tree := newVarTree()
	globals := tree.newList()
	foldAll(t, tree, nil, globals,
		uniformRec("light.colour", glenum.FloatVec3, 5),
		uniformRec("light.pos", glenum.FloatVec3, 3),
		uniformRec("lights[0].shadow.bias", glenum.Float, 9),
		uniformRec("lights[0].shadow.size", glenum.Float, 8),
		uniformRec("lights[2].shadow.bias", glenum.Float, 13),
	)

	got := tree.build(globals)
	if len(got) != 2 {
		t.Fatalf("got %d constants, want 2", len(got))
	}

	light := got[0]
	if light.Name != "light" || light.Reg.Vec != 3 {
		t.Errorf("light = %+v, want vec 3", light)
	}
	if len(light.Members) != 2 || light.Members[0].Name != "pos" || light.Members[1].Name != "colour" {
		t.Errorf("light members not sorted by register: %+v", light.Members)
	}

	lights := got[1]
	if lights.Name != "lights" || lights.Type.Elements != 3 || lights.Reg.Vec != 8 {
		t.Errorf("lights = %+v", lights)
	}
	if len(lights.Members) != 1 {
		t.Fatalf("lights members = %+v", lights.Members)
	}
	shadow := lights.Members[0]
	if shadow.Name != "shadow" || shadow.Type.Elements != 0 || len(shadow.Members) != 2 {
		t.Errorf("shadow = %+v", shadow)
	}
	if shadow.Members[0].Name != "size" {
		t.Errorf("shadow members = %+v", shadow.Members)
	}
}

func TestFoldLeafArrays(t *testing.T) {
	tree := newVarTree()
	globals := tree.newList()
	arr := uniformRec("weights[0]", glenum.Float, 2)
	arr.arraySize = 4
	foldAll(t, tree, nil, globals, arr, uniformRec("scale", glenum.Float, 1))

	got := tree.build(globals)
	want := []reflection.ShaderConstant{
		{
			Name: "scale",
			Reg:  reflection.Register{Vec: 1},
			Type: reflection.TypeDescriptor{Type: reflection.VarFloat, Rows: 1, Cols: 1, Name: "float"},
		},
		{
			Name: "weights",
			Reg:  reflection.Register{Vec: 2},
			Type: reflection.TypeDescriptor{Type: reflection.VarFloat, Rows: 1, Cols: 1, Elements: 4, Name: "float"},
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v\nwant %+v", got, want)
	}
}

func TestFoldRoundTripsFlatNames(t *testing.T) {
	names := []string{
		"particles[0].pos",
		"particles[0].vel",
		"cam.view",
		"cam.proj",
		"weights[0]",
		"time",
	}
	tree := newVarTree()
	block := tree.newList()
	for i, n := range names {
		rec := blockRec(n, glenum.FloatVec4, 0, int32(16*i))
		if n == "weights[0]" {
			rec.arraySize = 3
		}
		foldAll(t, tree, []int{block}, noList, rec)
	}

	got := reflection.FlattenNames(tree.build(block))
	if !reflect.DeepEqual(got, names) {
		t.Errorf("FlattenNames = %q, want %q", got, names)
	}
}

func TestFoldRegisters(t *testing.T) {
	tests := []struct {
		name string
		rec  varRecord
		want reflection.Register
	}{
		{"location", uniformRec("a", glenum.Float, 7), reflection.Register{Vec: 7}},
		{"offset", blockRec("a", glenum.Float, 0, 20), reflection.Register{Vec: 1, Comp: 1}},
		{"offset wins over location", varRecord{name: "a", typ: glenum.Float, location: 3, block: 0, offset: 36}, reflection.Register{Vec: 2, Comp: 1}},
		{"neither", uniformRec("a", glenum.Float, -1), reflection.UnassignedRegister},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := newVarTree()
			list := tree.newList()
			foldAll(t, tree, []int{list}, list, tt.rec)
			got := tree.build(list)
			if len(got) != 1 || got[0].Reg != tt.want {
				t.Errorf("got %+v, want register %+v", got, tt.want)
			}
		})
	}
}

func TestFoldRowMajorMatrix(t *testing.T) {
	tree := newVarTree()
	list := tree.newList()
	rec := blockRec("mvp", glenum.FloatMat3x4, 0, 0)
	rec.rowMajor = true
	foldAll(t, tree, []int{list}, noList, rec)

	got := tree.build(list)[0].Type
	if got.Rows != 4 || got.Cols != 3 || !got.RowMajorStorage || got.Name != "mat3x4" {
		t.Errorf("type = %+v", got)
	}
}

func TestFoldRejects(t *testing.T) {
	tests := []struct {
		name    string
		rec     varRecord
		def     int
		wantErr error
	}{
		{"misaligned offset", blockRec("a", glenum.Float, 0, 6), noList, ErrMisalignedOffset},
		{"block out of range", blockRec("a", glenum.Float, 3, 0), noList, ErrOrphanVariable},
		{"negative block", blockRec("a", glenum.Float, -2, 0), noList, ErrOrphanVariable},
		{"no default block", blockRec("a", glenum.Float, -1, 0), noList, ErrOrphanVariable},
		{"naked array member", blockRec("a[1]b", glenum.Float, 0, 0), noList, ErrNakedArrayMember},
		{"array of arrays", blockRec("a[0][0]", glenum.Float, 0, 0), noList, ErrNakedArrayMember},
		{"non-numeric index", blockRec("a[x].b", glenum.Float, 0, 0), noList, ErrMalformedName},
		{"unterminated index", blockRec("a[12", glenum.Float, 0, 0), noList, ErrMalformedName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := newVarTree()
			list := tree.newList()
			err := tree.fold(tt.rec, []int{list}, tt.def)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if !tree.empty(list) {
				t.Errorf("rejected record still added: %+v", tree.build(list))
			}
		})
	}
}

func TestFoldSkipsOpaque(t *testing.T) {
	tree := newVarTree()
	list := tree.newList()
	for _, typ := range []uint32{glenum.Sampler2D, glenum.Image2D, glenum.UnsignedIntAtomicCounter} {
		if err := tree.fold(uniformRec("tex", typ, 0), nil, list); err != nil {
			t.Errorf("fold(0x%04X) = %v", typ, err)
		}
	}
	if !tree.empty(list) {
		t.Errorf("opaque uniforms were added: %+v", tree.build(list))
	}
}
