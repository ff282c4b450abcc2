package indent

// Unit is one indentation level.
const Unit = "    "

// Kind records what opened an indentation level.
type Kind int

const (
	Brace Kind = iota
	Colon
)

func (k Kind) String() string {
	switch k {
	case Brace:
		return "brace"
	case Colon:
		return "colon"
	default:
		return "unknown"
	}
}

// Stack is the indentation context. Its depth is the level applied to the
// next emitted line.
type Stack struct {
	kinds []Kind
}

func (s *Stack) Push(k Kind) {
	s.kinds = append(s.kinds, k)
}

// Pop removes the innermost level. It reports false on an empty stack.
func (s *Stack) Pop() (Kind, bool) {
	if len(s.kinds) == 0 {
		return 0, false
	}
	i := len(s.kinds) - 1
	k := s.kinds[i]
	s.kinds = s.kinds[:i]
	return k, true
}

func (s *Stack) Depth() int { return len(s.kinds) }

// Indent returns the leading whitespace for the current depth.
func (s *Stack) Indent() string {
	return Level(len(s.kinds))
}

// Level returns n indentation units.
func Level(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, 0, n*len(Unit))
	for i := 0; i < n; i++ {
		b = append(b, Unit...)
	}
	return string(b)
}
