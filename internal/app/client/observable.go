package client

import "sync"

// Reader - наблюдаемое значение только для чтения.
type Reader[T any] interface {
	Get() T
	Subscribe() (<-chan T, func())
}

// Value - потокобезопасный держатель значения с подписками.
// Подписчик всегда получает последнее значение: промежуточные
// пропускаются, медленный читатель не блокирует запись.
type Value[T any] struct {
	mu     sync.Mutex
	v      T
	subs   map[int]chan T
	nextID int
	closed bool
}

func NewValue[T any](initial T) *Value[T] {
	return &Value[T]{
		v:    initial,
		subs: make(map[int]chan T),
	}
}

func (o *Value[T]) Get() T {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.v
}

// Set заменяет значение целиком и оповещает подписчиков.
func (o *Value[T]) Set(v T) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.v = v
	o.publish(v)
}

// Update атомарно вычисляет новое значение из текущего.
func (o *Value[T]) Update(fn func(T) T) T {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.v = fn(o.v)
	o.publish(o.v)
	return o.v
}

// Subscribe сразу отдает текущее значение. Вызов cancel закрывает канал.
func (o *Value[T]) Subscribe() (<-chan T, func()) {
	o.mu.Lock()
	defer o.mu.Unlock()

	ch := make(chan T, 1)
	if o.closed {
		close(ch)
		return ch, func() {}
	}

	id := o.nextID
	o.nextID++
	o.subs[id] = ch
	ch <- o.v

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			o.mu.Lock()
			defer o.mu.Unlock()
			if c, ok := o.subs[id]; ok {
				delete(o.subs, id)
				close(c)
			}
		})
	}
	return ch, cancel
}

// Close закрывает все подписки. Значение остается доступным через Get.
func (o *Value[T]) Close() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed {
		return
	}
	o.closed = true
	for id, ch := range o.subs {
		delete(o.subs, id)
		close(ch)
	}
}

// вызывается под o.mu, поэтому писатель в каналы всегда один
func (o *Value[T]) publish(v T) {
	for _, ch := range o.subs {
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- v:
		default:
		}
	}
}
