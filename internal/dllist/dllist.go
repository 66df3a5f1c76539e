package dllist

import "iter"

// List двусвязный список замкнутый в кольцо через узел-сторож.
// sentinel.next указывает на голову, sentinel.prior на хвост,
// у пустого списка сторож ссылается сам на себя.
// Нулевое значение List готово к использованию.
// WARNING: Не предоставляет гарантий безопасности при многопоточном доступе.
// WARNING: Список нельзя копировать по значению, для этого есть Copy.
// Запросы не меняющие список допускают nil и ведут себя как для пустого списка,
// изменяющие операции требуют не-nil список.
type List[T any] struct {
	noCopy noCopy

	sentinel node[T]
	length   int
}

// New конструктор пустого списка.
func New[T any]() *List[T] {
	return new(List[T]).init()
}

// Of конструктор списка из данных значений в том же порядке.
func Of[T any](values ...T) *List[T] {
	l := New[T]()
	for _, v := range values {
		l.Append(v)
	}

	return l
}

// Collect собирает список из значений последовательности.
func Collect[T any](seq iter.Seq[T]) *List[T] {
	return New[T]().Extend(seq)
}

func (l *List[T]) init() *List[T] {
	l.sentinel.next = &l.sentinel
	l.sentinel.prior = &l.sentinel
	l.length = 0
	return l
}

// lazyInit замыкает кольцо для нулевого значения List.
func (l *List[T]) lazyInit() {
	if l.sentinel.next == nil {
		l.init()
	}
}

// Len количество значений в списке.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}

	return l.length
}

// Prepend добавление значения в начало списка.
func (l *List[T]) Prepend(v T) {
	l.lazyInit()
	l.insertAfter(&l.sentinel, v)
}

// Append добавление значения в конец списка.
func (l *List[T]) Append(v T) {
	l.lazyInit()
	l.insertAfter(l.sentinel.prior, v)
}

// insertAfter вставляет новый узел между at и at.next.
func (l *List[T]) insertAfter(at *node[T], v T) {
	n := &node[T]{
		prior: at,
		next:  at.next,
		value: v,
	}
	n.prior.next = n
	n.next.prior = n
	l.length++
}

// unlink вынимает узел из кольца. Сторож сюда попадать не должен.
func (l *List[T]) unlink(n *node[T]) {
	n.prior.next = n.next
	n.next.prior = n.prior
	n.cleanup()
	l.length--
}

// normalize приводит отрицательный индекс к отсчёту от конца списка,
// всё что осталось отрицательным превращается в 0.
func (l *List[T]) normalize(idx int) int {
	if idx >= 0 {
		return idx
	}

	idx += l.Len()
	if idx < 0 {
		return 0
	}

	return idx
}

// nodeAt узел с данным индексом, индекс должен быть в [0, length).
// Идём с того конца, который ближе.
func (l *List[T]) nodeAt(idx int) *node[T] {
	if idx < l.length/2 {
		n := l.sentinel.next
		for i := 0; i < idx; i++ {
			n = n.next
		}
		return n
	}

	n := l.sentinel.prior
	for i := l.length - 1; i > idx; i-- {
		n = n.prior
	}
	return n
}
