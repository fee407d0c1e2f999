package Queues

// Queue is a first-in-first-out container. Receivers returning a bool as the
// second value report whether the first value is defined; when it's false the
// first value is the zero value of T and shouldn't be used.
type Queue[T any] interface {
	//Enqueue v at the back of the Queue.
	Enqueue(v T)
	//Dequeue removes the front element and returns it. The error is a
	//*linked.EmptyContainerError if the Queue is empty.
	Dequeue() (T, error)
	//Peek the front element without removing it.
	Peek() (T, bool)
	//IsEmpty is Size()==0.
	IsEmpty() bool
	//Size of the Queue.
	Size() uint
	//Corrupt returns whether the internal links are inconsistent with the size.
	Corrupt() bool
}
