package token

const (
	Undetermined Token = iota

	Skip

	Illegal
	Eof
	Comment

	String
	Number

	Plus      // +
	Minus     // -
	Multiply  // *
	Slash     // /
	Remainder // %

	AddAssign       // +=
	SubtractAssign  // -=
	MultiplyAssign  // *=
	QuotientAssign  // /=
	RemainderAssign // %=

	LogicalAnd // &&
	LogicalOr  // ||
	Increment  // ++
	Decrement  // --

	Equal       // ==
	StrictEqual // ===
	Less        // <
	Greater     // >
	Assign      // =
	Not         // !

	NotEqual       // !=
	StrictNotEqual // !==
	LessOrEqual    // <=
	GreaterOrEqual // >=

	LeftParenthesis // (
	LeftBracket     // [
	LeftBrace       // {
	Comma           // ,
	Period          // .

	RightParenthesis // )
	RightBracket     // ]
	RightBrace       // }
	Semicolon        // ;
	Colon            // :

	Identifier
	Keyword
	Boolean
	Null

	If
	Var
	For
	Else
	Void
	Const
	While
	Throw
	Return
	Typeof
	Function

	Let
	Yield
)

var token2string = [...]string{
	Illegal:          "Illegal",
	Eof:              "Eof",
	Comment:          "Comment",
	Keyword:          "Keyword",
	String:           "String",
	Boolean:          "Boolean",
	Null:             "Null",
	Number:           "Number",
	Identifier:       "Identifier",
	Plus:             "+",
	Minus:            "-",
	Multiply:         "*",
	Slash:            "/",
	Remainder:        "%",
	AddAssign:        "+=",
	SubtractAssign:   "-=",
	MultiplyAssign:   "*=",
	QuotientAssign:   "/=",
	RemainderAssign:  "%=",
	LogicalAnd:       "&&",
	LogicalOr:        "||",
	Increment:        "++",
	Decrement:        "--",
	Equal:            "==",
	StrictEqual:      "===",
	Less:             "<",
	Greater:          ">",
	Assign:           "=",
	Not:              "!",
	NotEqual:         "!=",
	StrictNotEqual:   "!==",
	LessOrEqual:      "<=",
	GreaterOrEqual:   ">=",
	LeftParenthesis:  "(",
	LeftBracket:      "[",
	LeftBrace:        "{",
	Comma:            ",",
	Period:           ".",
	RightParenthesis: ")",
	RightBracket:     "]",
	RightBrace:       "}",
	Semicolon:        ";",
	Colon:            ":",
	If:               "if",
	Var:              "var",
	Let:              "let",
	For:              "for",
	Else:             "else",
	Void:             "void",
	Yield:            "yield",
	Const:            "const",
	While:            "while",
	Throw:            "throw",
	Return:           "return",
	Typeof:           "typeof",
	Function:         "function",
}

var keywordTable = map[string]keyword{
	"if":       {token: If},
	"var":      {token: Var},
	"for":      {token: For},
	"else":     {token: Else},
	"void":     {token: Void},
	"const":    {token: Const},
	"while":    {token: While},
	"throw":    {token: Throw},
	"return":   {token: Return},
	"typeof":   {token: Typeof},
	"function": {token: Function},
	"let":      {token: Let, contextual: true},
	"yield":    {token: Yield, contextual: true},
	"false":    {token: Boolean},
	"true":     {token: Boolean},
	"null":     {token: Null},

	// Reserved words outside of the supported subset.
	"do":         {token: Keyword, reserved: true},
	"in":         {token: Keyword, reserved: true},
	"new":        {token: Keyword, reserved: true},
	"try":        {token: Keyword, reserved: true},
	"this":       {token: Keyword, reserved: true},
	"case":       {token: Keyword, reserved: true},
	"with":       {token: Keyword, reserved: true},
	"break":      {token: Keyword, reserved: true},
	"catch":      {token: Keyword, reserved: true},
	"class":      {token: Keyword, reserved: true},
	"super":      {token: Keyword, reserved: true},
	"delete":     {token: Keyword, reserved: true},
	"switch":     {token: Keyword, reserved: true},
	"default":    {token: Keyword, reserved: true},
	"finally":    {token: Keyword, reserved: true},
	"extends":    {token: Keyword, reserved: true},
	"continue":   {token: Keyword, reserved: true},
	"debugger":   {token: Keyword, reserved: true},
	"instanceof": {token: Keyword, reserved: true},
	"enum":       {token: Keyword, reserved: true},
	"export":     {token: Keyword, reserved: true},
	"import":     {token: Keyword, reserved: true},
}
