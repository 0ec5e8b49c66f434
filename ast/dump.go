package ast

import (
	"fmt"
	"strings"
)

// Dump renders a Block as an indented tree, adapted from the teacher's
// PrintingVisitor idea but implemented as a type switch rather than a
// full Visitor interface, since this variant family has no need for
// double dispatch beyond debug printing.
func Dump(b *Block) string {
	var sb strings.Builder
	dumpBlock(&sb, b, 0)
	return sb.String()
}

func indent(sb *strings.Builder, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
}

func dumpBlock(sb *strings.Builder, b *Block, depth int) {
	if b == nil {
		return
	}
	for _, s := range b.Stmts {
		dumpStmt(sb, s, depth)
	}
}

func dumpStmt(sb *strings.Builder, s Stmt, depth int) {
	indent(sb, depth)
	switch n := s.(type) {
	case *PrintStmt:
		fmt.Fprintf(sb, "VISIBLE (%d args, suppress=%v)\n", len(n.Args), n.Suppress)
	case *InputStmt:
		fmt.Fprintf(sb, "GIMMEH %s\n", identLabel(n.Target))
	case *AssignStmt:
		fmt.Fprintf(sb, "%s R <expr>\n", identLabel(n.Target))
	case *DeclareStmt:
		fmt.Fprintf(sb, "HAS A %s\n", identLabel(n.Target))
	case *CastStmt:
		fmt.Fprintf(sb, "%s IS NOW A %s\n", identLabel(n.Target), typeLabel(n.NewType))
	case *IfStmt:
		sb.WriteString("O RLY?\n")
		indent(sb, depth+1)
		sb.WriteString("YA RLY\n")
		dumpBlock(sb, n.Yes, depth+2)
		for range n.Guards {
			indent(sb, depth+1)
			sb.WriteString("MEBBE <expr>\n")
		}
		if n.Else != nil {
			indent(sb, depth+1)
			sb.WriteString("NO WAI\n")
			dumpBlock(sb, n.Else, depth+2)
		}
		indent(sb, depth)
		sb.WriteString("OIC\n")
	case *SwitchStmt:
		sb.WriteString("WTF?\n")
		for range n.Cases {
			indent(sb, depth+1)
			sb.WriteString("OMG <literal>\n")
		}
		indent(sb, depth)
		sb.WriteString("OIC\n")
	case *BreakStmt:
		sb.WriteString("GTFO\n")
	case *ReturnStmt:
		sb.WriteString("FOUND YR <expr>\n")
	case *LoopStmt:
		fmt.Fprintf(sb, "IM IN YR %s\n", n.Name)
		dumpBlock(sb, n.Body, depth+1)
		indent(sb, depth)
		fmt.Fprintf(sb, "IM OUTTA YR %s\n", n.Name)
	case *DeallocStmt:
		fmt.Fprintf(sb, "%s R NOOB\n", identLabel(n.Target))
	case *FuncDefStmt:
		fmt.Fprintf(sb, "HOW IZ %s(%s)\n", n.Name, strings.Join(n.Params, ", "))
		dumpBlock(sb, n.Body, depth+1)
		indent(sb, depth)
		sb.WriteString("IF U SAY SO\n")
	case *AltArrayDefStmt:
		fmt.Fprintf(sb, "OH HAI IM %s\n", n.Name)
		dumpBlock(sb, n.Body, depth+1)
		indent(sb, depth)
		sb.WriteString("KTHX\n")
	case *ImportStmt:
		fmt.Fprintf(sb, "CAN HAS %s?\n", n.Name)
	case *BindingStmt:
		fmt.Fprintf(sb, "<native %s>\n", n.Name)
	case *ExprStmt:
		sb.WriteString("<expr statement>\n")
	default:
		sb.WriteString("<unknown statement>\n")
	}
}

func identLabel(id *Identifier) string {
	if id == nil {
		return "<nil>"
	}
	if id.Kind == IndirectIdent {
		return "SRS <expr>"
	}
	if id.Slot != nil {
		return id.Name + " 'Z " + identLabel(id.Slot)
	}
	return id.Name
}

func typeLabel(t TypeKind) string {
	switch t {
	case NilType:
		return "NOOB"
	case BoolType:
		return "TROOF"
	case IntType:
		return "NUMBR"
	case FloatType:
		return "NUMBAR"
	case StringType:
		return "YARN"
	case ArrayType:
		return "BUKKIT"
	default:
		return "?"
	}
}
