package clock

import "time"

// Clock abstrai a origem do horário atual, permitindo testes determinísticos
type Clock interface {
	Now() time.Time
}

// systemClock usa o relógio do sistema
type systemClock struct{}

// System retorna um Clock baseado no relógio do sistema
func System() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

// fixedClock retorna sempre o mesmo instante
type fixedClock struct {
	t time.Time
}

// Fixed retorna um Clock congelado no instante informado
func Fixed(t time.Time) Clock {
	return fixedClock{t: t}
}

func (c fixedClock) Now() time.Time {
	return c.t
}
