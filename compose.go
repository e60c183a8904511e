package vine

import "fmt"

// AndThen sequences two programs: it runs p and feeds its result to next,
// which builds the continuation. Structurally, the Done node ending p is
// replaced by next(value); Write nodes are re-emitted in front and Read
// nodes defer the splice into their continuation. p itself is not modified.
//
// Leading writes are peeled off iteratively, so AndThen handles arbitrarily
// long write chains without growing the stack. Recursion only happens per
// Read node, one frame per line of input actually consumed.
func AndThen[T, S any](p Program[T], next func(T) Program[S]) Program[S] {
	var texts []string
	var tail Program[S]
loop:
	for {
		switch node := p.(type) {
		case *Write[T]:
			texts = append(texts, node.Text)
			p = node.Next
		case *Read[T]:
			tail = &Read[S]{Resume: func(line string) Program[S] {
				return AndThen(node.Resume(line), next)
			}}
			break loop
		case *Done[T]:
			tail = next(node.Value)
			break loop
		default:
			panic(fmt.Sprintf("vine: invalid program node %T", p))
		}
	}
	for i := len(texts) - 1; i >= 0; i-- {
		tail = &Write[S]{Text: texts[i], Next: tail}
	}
	return tail
}

// Then sequences p with a program that does not need its result. next is a
// thunk so that callers can refer to programs built elsewhere, including the
// enclosing function itself when looping.
//
// Note that next fires as soon as composition reaches the end of p. Only a
// Read node defers it, so self reference must sit inside a read continuation
// to stay finite.
func Then[T, S any](p Program[T], next func() Program[S]) Program[S] {
	return AndThen(p, func(T) Program[S] { return next() })
}

// Map transforms the result of p with f, keeping the effects as they are.
func Map[T, S any](p Program[T], f func(T) S) Program[S] {
	return AndThen(p, func(v T) Program[S] { return Pure(f(v)) })
}
