package dllist

// node узел кольца. Сторож списка тоже является узлом, но значения не хранит
// и наружу не выдаётся.
type node[T any] struct {
	prior *node[T]
	next  *node[T]

	value T
}

// cleanup разрывает ссылки вынутого из кольца узла.
func (n *node[T]) cleanup() {
	n.prior = nil
	n.next = nil
}

// noCopy позволяет go vet (copylocks) поймать копирование списка по значению.
type noCopy struct{}

func (*noCopy) Lock() {}
func (*noCopy) Unlock() {}
