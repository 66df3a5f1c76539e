package dllist

// Get значение по индексу. Отрицательный индекс отсчитывается от конца.
func (l *List[T]) Get(idx int) (T, error) {
	n, err := l.lookup("get", idx)
	if err != nil {
		var zero T
		return zero, err
	}

	return n.value, nil
}

// Set замена значения по индексу.
func (l *List[T]) Set(idx int, v T) error {
	n, err := l.lookup("set", idx)
	if err != nil {
		return err
	}

	n.value = v
	return nil
}

// Delete удаление значения по индексу.
func (l *List[T]) Delete(idx int) error {
	n, err := l.lookup("delete", idx)
	if err != nil {
		return err
	}

	l.unlink(n)
	return nil
}

// Insert вставка значения перед элементом с данным индексом.
// Индекс равный длине списка допустим и означает добавление в конец.
func (l *List[T]) Insert(idx int, v T) error {
	nidx := l.normalize(idx)
	if nidx > l.length {
		return errorOutOfRange("insert", idx, nidx, l.length)
	}

	if nidx == l.length {
		l.Append(v)
		return nil
	}

	n := l.nodeAt(nidx)
	l.insertAfter(n.prior, v)
	return nil
}

// Pop удаление последнего значения с его возвратом.
func (l *List[T]) Pop() (T, error) {
	return l.PopAt(-1)
}

// PopAt удаление значения по индексу с его возвратом.
func (l *List[T]) PopAt(idx int) (T, error) {
	n, err := l.lookup("pop", idx)
	if err != nil {
		var zero T
		return zero, err
	}

	v := n.value
	l.unlink(n)
	return v, nil
}

// lookup поиск узла с данным индексом для операций требующих существующий элемент.
func (l *List[T]) lookup(op string, idx int) (*node[T], error) {
	nidx := l.normalize(idx)
	if nidx >= l.Len() {
		return nil, errorOutOfRange(op, idx, nidx, l.Len())
	}

	return l.nodeAt(nidx), nil
}
