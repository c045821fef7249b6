package lambda

// IsFree reports whether v occurs in t outside the scope of any abstraction
// that rebinds v's name. The walk is breadth-first.
func IsFree(t Term, v Var) bool {
	queue := []Term{t}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		switch cur := cur.(type) {
		case Var:
			if cur.Name == v.Name {
				return true
			}
		case Abs:
			if cur.Param.Name != v.Name {
				queue = append(queue, cur.Body)
			}
		case App:
			queue = append(queue, cur.Fn, cur.Arg)
		}
	}
	return false
}

// Names returns the set of every name occurring in t, binders included.
func Names(t Term) map[string]bool {
	names := make(map[string]bool)
	stack := []Term{t}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch cur := cur.(type) {
		case Var:
			names[cur.Name] = true
		case Abs:
			names[cur.Param.Name] = true
			stack = append(stack, cur.Body)
		case App:
			stack = append(stack, cur.Arg, cur.Fn)
		}
	}
	return names
}
