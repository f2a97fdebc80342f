// Package report renders reflections as terminal tables.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/richinsley/glreflect/reflection"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).MarginTop(1)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == 0 {
				return headerStyle
			}
			return cellStyle
		})
}

// TypeName is the GLSL-style name of t with its array size.
func TypeName(t reflection.TypeDescriptor) string {
	name := t.Name
	if name == "" {
		name = t.Type.String()
	}
	if t.RowMajorStorage && t.Rows > 1 {
		name = "row_major " + name
	}
	if t.Elements > 0 {
		name += fmt.Sprintf("[%d]", t.Elements)
	}
	return name
}

// Mask spells a channel mask as "xyzw" with unused channels as '_'.
func Mask(m uint8) string {
	if m == 0 {
		return "-"
	}
	const chans = "xyzw"
	var sb strings.Builder
	for i := 0; i < 4; i++ {
		if m&(1<<i) != 0 {
			sb.WriteByte(chans[i])
		} else {
			sb.WriteByte('_')
		}
	}
	return sb.String()
}

func register(r reflection.Register) string {
	if r == reflection.UnassignedRegister {
		return "-"
	}
	return fmt.Sprintf("c%d.%c", r.Vec, "xyzw"[r.Comp%4])
}

func binding(m *reflection.BindpointMapping, slots []reflection.Bindpoint, i int) string {
	if m == nil || i >= len(slots) {
		return "n/a"
	}
	bp := slots[i]
	if bp.Bind < 0 {
		return "unbound"
	}
	if !bp.Used {
		return fmt.Sprintf("%d (unused)", bp.Bind)
	}
	return fmt.Sprintf("%d", bp.Bind)
}

func constantRows(t *table.Table, vars []reflection.ShaderConstant, indent string) {
	for _, v := range vars {
		t.Row(indent+v.Name, register(v.Reg), TypeName(v.Type))
		constantRows(t, v.Members, indent+"  ")
	}
}

func signatureTable(sig []reflection.SignatureParameter) string {
	t := newTable("Name", "Reg", "Type", "Mask", "Used", "System value")
	for _, p := range sig {
		t.Row(p.VarName, fmt.Sprintf("%d", p.RegIndex), fmt.Sprintf("%s%d", p.CompType, p.CompCount),
			Mask(p.RegChannelMask), Mask(p.ChannelUsedMask), p.SystemValue.String())
	}
	return t.String()
}

// Write renders refl, and mapping if non-nil, to w.
func Write(w io.Writer, title string, refl *reflection.ShaderReflection, mapping *reflection.BindpointMapping) error {
	var sb strings.Builder
	section := func(name string) {
		sb.WriteString(titleStyle.Render(name))
		sb.WriteString("\n")
	}

	sb.WriteString(lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%s (%s shader)", title, refl.Stage)))
	sb.WriteString("\n")

	section("Resources")
	if len(refl.Resources) == 0 {
		sb.WriteString("none\n")
	} else {
		t := newTable("#", "Name", "Kind", "Type", "Res", "Bind", "RW", "Mapped")
		for i, r := range refl.Resources {
			var slots []reflection.Bindpoint
			if mapping != nil {
				slots = mapping.Resources
			}
			name := r.Name
			if r.ArrayIndex > 0 {
				name = fmt.Sprintf("%s [%d]", r.Name, r.ArrayIndex)
			}
			t.Row(fmt.Sprintf("%d", i), name, r.Kind.String(), TypeName(r.VariableType), r.ResType.String(),
				fmt.Sprintf("%d", r.BindPoint), fmt.Sprintf("%v", r.IsReadWrite), binding(mapping, slots, i))
		}
		sb.WriteString(t.String())
		sb.WriteString("\n")
	}

	for i, cb := range refl.ConstantBlocks {
		var slots []reflection.Bindpoint
		if mapping != nil {
			slots = mapping.ConstantBlocks
		}
		section(fmt.Sprintf("Constant block %s (bind %d, mapped %s)", cb.Name, cb.BindPoint, binding(mapping, slots, i)))
		t := newTable("Name", "Offset", "Type")
		constantRows(t, cb.Variables, "")
		sb.WriteString(t.String())
		sb.WriteString("\n")
	}

	for _, s := range []struct {
		name string
		sig  []reflection.SignatureParameter
	}{{"Inputs", refl.InputSig}, {"Outputs", refl.OutputSig}} {
		section(s.name)
		if len(s.sig) == 0 {
			sb.WriteString("none\n")
			continue
		}
		sb.WriteString(signatureTable(s.sig))
		sb.WriteString("\n")
	}

	if mapping != nil && len(mapping.InputAttributes) > 0 {
		section("Vertex attributes")
		t := newTable("Slot", "Input")
		for slot, idx := range mapping.InputAttributes {
			if idx < 0 || int(idx) >= len(refl.InputSig) {
				continue
			}
			t.Row(fmt.Sprintf("%d", slot), refl.InputSig[idx].VarName)
		}
		sb.WriteString(t.String())
		sb.WriteString("\n")
	}

	if refl.Disassembly != "" {
		section("Disassembly")
		sb.WriteString(refl.Disassembly)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
