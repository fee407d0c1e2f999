package Stacks

// Stack is a last-in-first-out container. Peek follows the (T, bool) convention:
// the first value is only meaningful when the second is true.
type Stack[T any] interface {
	//Push v on top of the Stack.
	Push(v T)
	//Pop removes the top element and returns it. The error is a
	//*linked.EmptyContainerError if the Stack is empty.
	Pop() (T, error)
	//Peek the top element without removing it.
	Peek() (T, bool)
	IsEmpty() bool
	Size() uint
	//Corrupt returns whether the internal links are inconsistent with the size.
	Corrupt() bool
}
