package ast

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDumpRendersNestedIf(t *testing.T) {
	target := &Identifier{Kind: DirectIdent, Name: "X"}
	block := &Block{Stmts: []Stmt{
		&DeclareStmt{Target: target},
		&IfStmt{
			Yes:    &Block{Stmts: []Stmt{&PrintStmt{Args: []Expr{&ConstExpr{}}}}},
			Guards: []Expr{&ConstExpr{}},
			Blocks: []*Block{{}},
			Else:   &Block{Stmts: []Stmt{&BreakStmt{}}},
		},
	}}

	out := Dump(block)
	assert.True(t, strings.Contains(out, "HAS A X"))
	assert.True(t, strings.Contains(out, "O RLY?"))
	assert.True(t, strings.Contains(out, "MEBBE <expr>"))
	assert.True(t, strings.Contains(out, "NO WAI"))
	assert.True(t, strings.Contains(out, "GTFO"))
	assert.True(t, strings.Contains(out, "OIC"))
}

func TestIdentLabelHandlesSlotsAndIndirect(t *testing.T) {
	slotted := &Identifier{Kind: DirectIdent, Name: "BOX", Slot: &Identifier{Kind: DirectIdent, Name: "N"}}
	assert.Equal(t, "BOX 'Z N", identLabel(slotted))
	assert.Equal(t, "SRS <expr>", identLabel(&Identifier{Kind: IndirectIdent}))
	assert.Equal(t, "<nil>", identLabel(nil))
}

func TestTypeLabelCoversEveryKind(t *testing.T) {
	cases := map[TypeKind]string{
		NilType: "NOOB", BoolType: "TROOF", IntType: "NUMBR",
		FloatType: "NUMBAR", StringType: "YARN", ArrayType: "BUKKIT",
	}
	for kind, want := range cases {
		assert.Equal(t, want, typeLabel(kind))
	}
}
