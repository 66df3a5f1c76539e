package tlog

import (
	"fmt"
	"strings"

	"github.com/sirkon/errors"
)

const (
	bold  = "\033[1m"
	red   = "\033[1;31m"
	reset = "\033[0m"
)

// Log вывод ошибки вместе с её контекстом.
func Log(t TestingPrinter, err error) {
	t.Helper()
	t.Log(render(err, bold))
}

// Error вывод ошибки с контекстом и пометка теста как упавшего.
func Error(t TestingPrinter, err error) {
	t.Helper()
	t.Error(render(err, red))
}

// Check ничего не делает и возвращает false для nil.
// Иначе выводит ошибку как Error и возвращает true.
func Check(t TestingPrinter, err error) bool {
	if err == nil {
		return false
	}

	t.Helper()
	t.Error(render(err, red))
	return true
}

// Expect проверяет, что ошибка ожидаемого вида и логирует её.
// Если ошибки нет или она другого вида, то тест помечается упавшим.
func Expect(t TestingPrinter, err error, kind string, is func(error) bool) bool {
	t.Helper()

	if err == nil {
		t.Error(kind + " error expected, got nothing")
		return false
	}

	if !is(err) {
		t.Error(render(errors.Wrap(err, "unexpected error, "+kind+" was expected"), red))
		return false
	}

	t.Log(render(err, bold))
	return true
}

func render(err error, highlight string) string {
	if err == nil {
		return "<nil>"
	}

	var b strings.Builder
	b.WriteString(highlight)
	b.WriteString(err.Error())
	b.WriteString(reset)
	b.WriteByte('\n')

	d := errors.GetContextDeliverer(err)
	if d == nil {
		return b.String()
	}

	var c errorContextConsumer
	d.Deliver(&c)

	var width int
	for _, v := range c.vars {
		width = max(width, len(v.name))
	}

	for _, v := range c.vars {
		b.WriteString("    ")
		b.WriteString(bold)
		b.WriteString(v.name)
		b.WriteString(reset)
		b.WriteString(": ")
		b.WriteString(strings.Repeat(" ", width-len(v.name)))
		_, _ = fmt.Fprintln(&b, v.value)
	}

	return b.String()
}
