package dllist

import "iter"

// Concat новый список из значений данного списка, за которыми следуют значения other.
// Исходные списки не меняются.
func (l *List[T]) Concat(other *List[T]) *List[T] {
	res := l.Copy()
	if other != nil {
		res.Extend(other.All())
	}

	return res
}

// Clear удаление всех значений. Возвращает сам список.
func (l *List[T]) Clear() *List[T] {
	l.lazyInit()
	for n := l.sentinel.next; n != &l.sentinel; {
		next := n.next
		n.cleanup()
		n = next
	}

	return l.init()
}

// Copy новый список с новыми узлами и теми же значениями.
func (l *List[T]) Copy() *List[T] {
	res := New[T]()
	for v := range l.All() {
		res.Append(v)
	}

	return res
}

// Extend добавление в конец всех значений последовательности. Возвращает сам список.
func (l *List[T]) Extend(seq iter.Seq[T]) *List[T] {
	for v := range seq {
		l.Append(v)
	}

	return l
}

// ExtendValues то же, что и Extend, только для явно перечисленных значений.
func (l *List[T]) ExtendValues(values ...T) *List[T] {
	for _, v := range values {
		l.Append(v)
	}

	return l
}

// Slice значения списка в виде слайса.
func (l *List[T]) Slice() []T {
	res := make([]T, 0, l.Len())
	for v := range l.All() {
		res = append(res, v)
	}

	return res
}
