package ast

type (
	FunctionLiteral struct {
		Function      Idx
		Name          *Identifier `optional:"true"`
		ParameterList ParameterList
		Body          *BlockStatement

		Generator bool
	}

	ParameterList struct {
		Opening Idx
		List    []*Identifier
		Closing Idx
	}
)

func (*FunctionLiteral) _expr() {}

// IsAnonymous reports whether the function has no name.
func (f *FunctionLiteral) IsAnonymous() bool {
	return f.Name == nil || f.Name.Name == ""
}
