package vine

// Unit is the result of programs that run only for their console effects.
// It is the value produced by WriteLine.
type Unit struct{}

// String renders the unit value the way the demo driver prints results.
func (Unit) String() string { return "()" }

// Program is a console interaction described as data. A value of this type
// is always one of three concrete shapes: *Write, *Read or *Done. Programs
// are inert; nothing happens until an interpreter walks them (pkg/interp).
//
// Programs are treated as immutable. The operations in this package never
// modify a node they were given, they allocate new ones, so a value can be
// composed into several larger programs and interpreted any number of times.
// A Program value is never nil.
type Program[T any] interface {
	// program seals the union. Mentioning T keeps programs with different
	// result types from mixing.
	program(T)
}

// Write emits one line of text and continues with Next.
type Write[T any] struct {
	// Text is the line to emit, without a terminator.
	Text string
	// Next is the rest of the program.
	Next Program[T]
}

func (*Write[T]) program(T) {}

// Read waits for one line of input. The line is handed to Resume, which
// builds the rest of the program. Resume must be free of side effects;
// all I/O belongs in Write and Read nodes.
type Read[T any] struct {
	Resume func(line string) Program[T]
}

func (*Read[T]) program(T) {}

// Done ends a program with its result.
type Done[T any] struct {
	Value T
}

func (*Done[T]) program(T) {}

var (
	_ Program[Unit]   = (*Write[Unit])(nil)
	_ Program[string] = (*Read[string])(nil)
	_ Program[int]    = (*Done[int])(nil)
)

// WriteLine describes emitting text as one line. The program yields Unit.
func WriteLine(text string) Program[Unit] {
	return &Write[Unit]{Text: text, Next: &Done[Unit]{}}
}

// ReadLine describes reading one line of input. The program yields the line
// exactly as the console delivered it, terminator stripped but otherwise
// untouched.
func ReadLine() Program[string] {
	return &Read[string]{Resume: func(line string) Program[string] {
		return &Done[string]{Value: line}
	}}
}

// Pure describes a program that performs no I/O and yields v.
func Pure[T any](v T) Program[T] {
	return &Done[T]{Value: v}
}
