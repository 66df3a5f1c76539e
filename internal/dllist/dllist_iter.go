package dllist

import (
	"fmt"
	"iter"
	"strings"
)

// All последовательность значений от головы к хвосту.
// Количество выдаваемых значений фиксируется в момент начала обхода.
// Изменение структуры списка во время обхода не поддерживается.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l == nil {
			return
		}

		n := l.sentinel.next
		for i, length := 0, l.length; i < length; i++ {
			if !yield(n.value) {
				return
			}
			n = n.next
		}
	}
}

// Backward последовательность значений от хвоста к голове.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l == nil {
			return
		}

		n := l.sentinel.prior
		for i, length := 0, l.length; i < length; i++ {
			if !yield(n.value) {
				return
			}
			n = n.prior
		}
	}
}

// Enumerate последовательность пар индекс-значение от головы к хвосту.
func (l *List[T]) Enumerate() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		var i int
		for v := range l.All() {
			if !yield(i, v) {
				return
			}
			i++
		}
	}
}

// String отображение в виде [e0, e1, ..., en-1].
func (l *List[T]) String() string {
	var buf strings.Builder
	buf.WriteByte('[')
	for i, v := range l.Enumerate() {
		if i > 0 {
			buf.WriteString(", ")
		}
		_, _ = fmt.Fprint(&buf, v)
	}
	buf.WriteByte(']')

	return buf.String()
}

// GoString для %#v, совпадает со String.
func (l *List[T]) GoString() string {
	return l.String()
}
