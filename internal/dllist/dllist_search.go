package dllist

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// Equal проверка, что списки содержат равные значения в одинаковом порядке.
func Equal[T comparable](a, b *List[T]) bool {
	return a.EqualFunc(b, func(x, y T) bool {
		return x == y
	})
}

// EqualFunc то же, что Equal, но со сравнением значений через eq.
// nil список равен только nil списку.
func (l *List[T]) EqualFunc(other *List[T], eq func(a, b T) bool) bool {
	if l == other {
		return true
	}
	if l == nil || other == nil || l.length != other.length {
		return false
	}

	x := l.sentinel.next
	y := other.sentinel.next
	for i := 0; i < l.length; i++ {
		if !eq(x.value, y.value) {
			return false
		}
		x = x.next
		y = y.next
	}

	return true
}

// Contains проверка наличия значения в списке.
func Contains[T comparable](l *List[T], v T) bool {
	return l.ContainsFunc(equalTo(v))
}

// ContainsFunc проверка наличия значения удовлетворяющего match.
func (l *List[T]) ContainsFunc(match func(T) bool) bool {
	_, err := l.IndexFunc(match, 0, l.Len())
	return err == nil
}

// Count количество вхождений значения в список.
func Count[T comparable](l *List[T], v T) int {
	return l.CountFunc(equalTo(v))
}

// CountFunc количество значений удовлетворяющих match.
func (l *List[T]) CountFunc(match func(T) bool) int {
	var res int
	for v := range l.All() {
		if match(v) {
			res++
		}
	}

	return res
}

// Index индекс первого вхождения значения.
func Index[T comparable](l *List[T], v T) (int, error) {
	return l.IndexFunc(equalTo(v), 0, l.Len())
}

// IndexRange индекс первого вхождения значения в полуинтервал [start, end).
// Обе границы нормализуются так же, как индексы, end обрезается по длине списка.
func IndexRange[T comparable](l *List[T], v T, start, end int) (int, error) {
	return l.IndexFunc(equalTo(v), start, end)
}

// IndexFunc индекс первого значения удовлетворяющего match в [start, end).
func (l *List[T]) IndexFunc(match func(T) bool, start, end int) (int, error) {
	s := l.normalize(start)
	e := l.normalize(end)
	if e > l.Len() {
		e = l.Len()
	}
	if s >= e {
		return -1, errorNotFound("index", start, end)
	}

	n := l.nodeAt(s)
	for i := s; i < e; i++ {
		if match(n.value) {
			return i, nil
		}
		n = n.next
	}

	return -1, errorNotFound("index", start, end)
}

// Remove удаление первого вхождения значения.
func Remove[T comparable](l *List[T], v T) error {
	return l.RemoveFunc(equalTo(v))
}

// RemoveFunc удаление первого значения удовлетворяющего match.
// Если такого нет, то список не меняется.
func (l *List[T]) RemoveFunc(match func(T) bool) error {
	for n := l.sentinel.next; n != nil && n != &l.sentinel; n = n.next {
		if match(n.value) {
			l.unlink(n)
			return nil
		}
	}

	return errorNotFound("remove", 0, l.length)
}

// Min минимальное значение списка. NaN считается меньше любого числа.
func Min[T constraints.Ordered](l *List[T]) (T, error) {
	return l.MinFunc(cmp.Compare[T])
}

// Max максимальное значение списка.
func Max[T constraints.Ordered](l *List[T]) (T, error) {
	return l.MaxFunc(cmp.Compare[T])
}

// MinFunc минимальное значение по cmp. При равенстве выигрывает более раннее.
func (l *List[T]) MinFunc(compare func(a, b T) int) (T, error) {
	return l.extremum("min", func(a, b T) bool {
		return compare(a, b) < 0
	})
}

// MaxFunc максимальное значение по cmp. При равенстве выигрывает более раннее.
func (l *List[T]) MaxFunc(compare func(a, b T) int) (T, error) {
	return l.extremum("max", func(a, b T) bool {
		return compare(a, b) > 0
	})
}

func (l *List[T]) extremum(op string, better func(a, b T) bool) (T, error) {
	if l.Len() == 0 {
		var zero T
		return zero, errorEmpty(op)
	}

	res := l.sentinel.next.value
	for v := range l.All() {
		if better(v, res) {
			res = v
		}
	}

	return res, nil
}


func equalTo[T comparable](v T) func(T) bool {
	return func(x T) bool {
		return x == v
	}
}
