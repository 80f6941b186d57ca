package ordtree

type stack[E any] struct {
	elements []E
}

func newStack[E any]() *stack[E] {
	return &stack[E]{
		elements: []E{},
	}
}

func (s *stack[E]) push(x E) {
	s.elements = append(s.elements, x)
}

// pop returns the most recently pushed element. The boolean indicates success,
// which is false if the stack was empty.
func (s *stack[E]) pop() (x E, ok bool) {
	if len(s.elements) == 0 {
		return x, false
	}
	last := len(s.elements) - 1
	x = s.elements[last]
	var zero E
	s.elements[last] = zero
	s.elements = s.elements[:last]
	return x, true
}

func (s *stack[E]) len() int {
	return len(s.elements)
}

// queue is a FIFO built from two stacks: pushes go to back, pops come from
// front, and back is poured into front whenever front runs dry.
type queue[E any] struct {
	back  *stack[E]
	front *stack[E]
}

func newQueue[E any]() queue[E] {
	return queue[E]{
		back:  newStack[E](),
		front: newStack[E](),
	}
}

func (q queue[E]) push(x E) {
	q.back.push(x)
}

func (q queue[E]) emptyBack() {
	for {
		x, ok := q.back.pop()
		if !ok {
			break
		}
		q.front.push(x)
	}
}

func (q queue[E]) pop() (E, bool) {
	x, ok := q.front.pop()
	if ok {
		return x, true
	}
	q.emptyBack()
	return q.front.pop()
}

func (q queue[E]) len() int {
	return q.back.len() + q.front.len()
}
