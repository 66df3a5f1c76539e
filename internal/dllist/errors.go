package dllist

import "github.com/sirkon/errors"

const (
	// ErrOutOfRange индекс после нормализации выходит за допустимые для операции границы.
	ErrOutOfRange errors.Const = "index out of range"

	// ErrNotFound искомое значение отсутствует в просмотренном диапазоне.
	ErrNotFound errors.Const = "value not found"

	// ErrEmpty операция не определена для пустого списка.
	ErrEmpty errors.Const = "empty list"
)

// IsOutOfRange проверка, что ошибка вызвана выходом индекса за границы.
func IsOutOfRange(err error) bool {
	return errors.Is(err, ErrOutOfRange)
}

// IsNotFound проверка, что ошибка вызвана отсутствием значения.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsEmpty проверка, что ошибка вызвана пустым списком.
func IsEmpty(err error) bool {
	return errors.Is(err, ErrEmpty)
}

func errorOutOfRange(op string, idx, nidx, length int) error {
	return errors.Wrap(ErrOutOfRange, op).
		Int("index", idx).
		Int("normalized-index", nidx).
		Int("length", length)
}

func errorNotFound(op string, start, end int) error {
	return errors.Wrap(ErrNotFound, op).
		Int("start", start).
		Int("end", end)
}

func errorEmpty(op string) error {
	return errors.Wrap(ErrEmpty, op)
}
