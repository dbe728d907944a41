package typing

import (
	"fmt"
	"strings"
)

// Printer provides pretty-printing for the typed IR
type Printer struct {
	indent int
	output strings.Builder
}

// NewPrinter creates a new IR printer
func NewPrinter() *Printer {
	return &Printer{indent: 0}
}

// Print returns the string representation of a function
func Print(fn *Function) string {
	p := NewPrinter()
	p.printFunction(fn)
	return p.output.String()
}

// PrintExp returns the string representation of a single expression
func PrintExp(e *Exp) string {
	p := NewPrinter()
	p.printExp(e)
	return p.output.String()
}

// Helper methods

func (p *Printer) writeIndent() {
	for i := 0; i < p.indent; i++ {
		p.output.WriteString("  ")
	}
}

func (p *Printer) writeLine(format string, args ...interface{}) {
	p.writeIndent()
	p.output.WriteString(fmt.Sprintf(format, args...))
	p.output.WriteString("\n")
}

func (p *Printer) printFunction(fn *Function) {
	var params []string
	for _, param := range fn.Signature.Parameters {
		params = append(params, fmt.Sprintf("%s: %s", param.Var.Name, TypeString(param.Ty)))
	}
	var tparams string
	if len(fn.Signature.TypeParameters) > 0 {
		var names []string
		for _, tp := range fn.Signature.TypeParameters {
			if tp.Abilities.IsEmpty() {
				names = append(names, tp.Name)
			} else {
				names = append(names, tp.Name+": "+tp.Abilities.String())
			}
		}
		tparams = "<" + strings.Join(names, ", ") + ">"
	}
	p.writeLine("fn %s%s(%s) -> %s", fn.Name, tparams, strings.Join(params, ", "), TypeString(fn.Signature.ReturnType))

	switch body := fn.Body.Value.(type) {
	case *NativeBody:
		p.indent++
		p.writeLine("native")
		p.indent--
	case *DefinedBody:
		p.indent++
		p.printSequence(body.Seq)
		p.indent--
	}
}

func (p *Printer) printSequence(seq Sequence) {
	for _, item := range seq {
		switch s := item.Value.(type) {
		case *Bind:
			p.writeLine("bind %s =", p.lvalueListString(s.LHS))
			p.indent++
			p.printExp(s.Init)
			p.indent--
		case *Declare:
			p.writeLine("declare %s", p.lvalueListString(s.LHS))
		case *Seq:
			p.printExp(s.Exp)
		}
	}
}

func (p *Printer) printExp(e *Exp) {
	if e == nil {
		p.writeLine("<nil>")
		return
	}
	switch ex := e.Exp.(type) {
	case *ModuleCall:
		p.writeLine("call %s::%s : %s", ex.Module, ex.Name, TypeString(e.Ty))
		p.indent++
		p.printExp(ex.Argument)
		p.indent--
	case *Use:
		p.writeLine("use %s : %s", ex.Var.Name, TypeString(e.Ty))
	case *Copy:
		p.writeLine("copy %s : %s", ex.Var.Name, TypeString(e.Ty))
	case *Move:
		p.writeLine("move %s : %s", ex.Var.Name, TypeString(e.Ty))
	case *BorrowLocal:
		p.writeLine("borrow_local %s%s : %s", mutPrefix(ex.Mut), ex.Var.Name, TypeString(e.Ty))
	case *VarCall:
		p.writeLine("var_call %s : %s", ex.Var.Name, TypeString(e.Ty))
		p.indent++
		p.printExp(ex.Argument)
		p.indent--
	case *Lambda:
		p.writeLine("lambda %s : %s", p.lvalueListString(ex.Params), TypeString(e.Ty))
		p.indent++
		p.printExp(ex.Body)
		p.indent--
	case *IfElse:
		p.writeLine("if : %s", TypeString(e.Ty))
		p.indent++
		p.printExp(ex.Cond)
		p.printExp(ex.Then)
		p.printExp(ex.Else)
		p.indent--
	case *While:
		p.writeLine("while : %s", TypeString(e.Ty))
		p.indent++
		p.printExp(ex.Cond)
		p.printExp(ex.Body)
		p.indent--
	case *Loop:
		p.writeLine("loop : %s", TypeString(e.Ty))
		p.indent++
		p.printExp(ex.Body)
		p.indent--
	case *Block:
		p.writeLine("block : %s", TypeString(e.Ty))
		p.indent++
		p.printSequence(ex.Seq)
		p.indent--
	case *Mutate:
		p.writeLine("mutate")
		p.indent++
		p.printExp(ex.Dest)
		p.printExp(ex.Source)
		p.indent--
	case *Binop:
		p.writeLine("binop %s : %s", ex.Op, TypeString(e.Ty))
		p.indent++
		p.printExp(ex.Left)
		p.printExp(ex.Right)
		p.indent--
	case *Pack:
		p.writeLine("pack %s : %s", ex.Name.String(), TypeString(e.Ty))
		p.indent++
		for _, field := range ex.Fields {
			p.writeLine("field %s", field.Name)
			p.indent++
			p.printExp(field.Init)
			p.indent--
		}
		p.indent--
	case *ExpList:
		p.writeLine("explist : %s", TypeString(e.Ty))
		p.indent++
		for _, item := range ex.Items {
			switch it := item.(type) {
			case *Single:
				p.printExp(it.Exp)
			case *Splat:
				p.writeLine("splat")
				p.indent++
				p.printExp(it.Exp)
				p.indent--
			}
		}
		p.indent--
	case *Assign:
		p.writeLine("assign %s =", p.lvalueListString(ex.LHS))
		p.indent++
		p.printExp(ex.RHS)
		p.indent--
	case *Vector:
		p.writeLine("vector<%s> : %s", TypeString(ex.ElemType), TypeString(e.Ty))
		p.indent++
		p.printExp(ex.Argument)
		p.indent--
	case *Cast:
		p.writeLine("cast %s", TypeString(ex.Ty))
		p.indent++
		p.printExp(ex.Exp)
		p.indent--
	case *Annotate:
		p.writeLine("annotate %s", TypeString(ex.Ty))
		p.indent++
		p.printExp(ex.Exp)
		p.indent--
	case *Builtin:
		p.writeLine("builtin %s : %s", ex.Name, TypeString(e.Ty))
		p.indent++
		p.printExp(ex.Argument)
		p.indent--
	case *Return:
		p.writeLine("return")
		p.indent++
		p.printExp(ex.Exp)
		p.indent--
	case *Abort:
		p.writeLine("abort")
		p.indent++
		p.printExp(ex.Exp)
		p.indent--
	case *Dereference:
		p.writeLine("deref : %s", TypeString(e.Ty))
		p.indent++
		p.printExp(ex.Exp)
		p.indent--
	case *Unary:
		p.writeLine("unary %s : %s", ex.Op, TypeString(e.Ty))
		p.indent++
		p.printExp(ex.Exp)
		p.indent--
	case *Borrow:
		p.writeLine("borrow %s.%s : %s", mutPrefix(ex.Mut), ex.Field, TypeString(e.Ty))
		p.indent++
		p.printExp(ex.Exp)
		p.indent--
	case *TempBorrow:
		p.writeLine("temp_borrow %s: %s", mutPrefix(ex.Mut), TypeString(e.Ty))
		p.indent++
		p.printExp(ex.Exp)
		p.indent--
	case *UnitExp:
		p.writeLine("unit")
	case *Value:
		p.writeLine("value %s : %s", ex.Raw, TypeString(e.Ty))
	case *Constant:
		p.writeLine("constant %s::%s : %s", ex.Module, ex.Name, TypeString(e.Ty))
	case *Break:
		p.writeLine("break")
	case *Continue:
		p.writeLine("continue")
	case *SpecBlock:
		p.writeLine("spec #%d", ex.ID)
	case *UnresolvedExp:
		p.writeLine("<error>")
	default:
		p.writeLine("<unknown %T>", ex)
	}
}

func (p *Printer) lvalueListString(list *LValueList) string {
	var parts []string
	for _, lv := range list.Items {
		parts = append(parts, p.lvalueString(lv))
	}
	return strings.Join(parts, ", ")
}

func (p *Printer) lvalueString(lv *LValue) string {
	switch v := lv.Value.(type) {
	case *VarLValue:
		if v.Ty != nil {
			return v.Var.Name + ": " + TypeString(v.Ty)
		}
		return v.Var.Name
	case *Unpack:
		return v.Name.String() + "{" + p.unpackFieldsString(v.Fields) + "}"
	case *BorrowUnpack:
		return "&" + mutPrefix(v.Mut) + v.Name.String() + "{" + p.unpackFieldsString(v.Fields) + "}"
	case *Ignore:
		return "_"
	default:
		return "<unknown>"
	}
}

func (p *Printer) unpackFieldsString(fields []UnpackField) string {
	var parts []string
	for _, field := range fields {
		parts = append(parts, field.Name+": "+p.lvalueString(field.LValue))
	}
	return strings.Join(parts, ", ")
}

func mutPrefix(mut bool) string {
	if mut {
		return "mut "
	}
	return ""
}
