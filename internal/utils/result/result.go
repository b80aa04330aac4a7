// Package result описывает исход операции репозитория без паники и без
// возврата error через границы слоев: Success, Error или Loading.
package result

import "fmt"

// Kind - активный вариант Result.
type Kind int

const (
	KindLoading Kind = iota
	KindSuccess
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindError:
		return "error"
	default:
		return "loading"
	}
}

// Result - закрытое множество исходов. Нулевое значение соответствует Loading.
type Result[T any] struct {
	kind    Kind
	data    T
	message string
	cause   error
}

// Success оборачивает успешный результат.
func Success[T any](data T) Result[T] {
	return Result[T]{kind: KindSuccess, data: data}
}

// Error оборачивает ошибку. cause может быть nil.
func Error[T any](message string, cause error) Result[T] {
	return Result[T]{kind: KindError, message: message, cause: cause}
}

// Loading - зарезервированный маркер, в состоянии не хранится.
func Loading[T any]() Result[T] {
	return Result[T]{kind: KindLoading}
}

func (r Result[T]) Kind() Kind      { return r.kind }
func (r Result[T]) IsSuccess() bool { return r.kind == KindSuccess }
func (r Result[T]) IsError() bool   { return r.kind == KindError }
func (r Result[T]) IsLoading() bool { return r.kind == KindLoading }

// Data возвращает данные и true только для Success.
func (r Result[T]) Data() (T, bool) {
	if r.kind != KindSuccess {
		var zero T
		return zero, false
	}
	return r.data, true
}

// Message пустой для всех вариантов, кроме Error.
func (r Result[T]) Message() string { return r.message }

// Cause - исходная ошибка транспорта, если она была.
func (r Result[T]) Cause() error { return r.cause }

// OnSuccess вызывает fn только для Success и возвращает исходное значение.
func (r Result[T]) OnSuccess(fn func(data T)) Result[T] {
	if r.kind == KindSuccess {
		fn(r.data)
	}
	return r
}

// OnError вызывает fn только для Error и возвращает исходное значение.
func (r Result[T]) OnError(fn func(message string)) Result[T] {
	if r.kind == KindError {
		fn(r.message)
	}
	return r
}

// Match требует обработчик на каждый вариант и вызывает ровно один.
func (r Result[T]) Match(onSuccess func(T), onError func(message string, cause error), onLoading func()) {
	switch r.kind {
	case KindSuccess:
		onSuccess(r.data)
	case KindError:
		onError(r.message, r.cause)
	default:
		onLoading()
	}
}

// Err возвращает *Failure для Error и nil для остальных вариантов.
func (r Result[T]) Err() error {
	if r.kind != KindError {
		return nil
	}
	return &Failure{Message: r.message, Cause: r.cause}
}

func (r Result[T]) String() string {
	switch r.kind {
	case KindSuccess:
		return fmt.Sprintf("Success(%v)", r.data)
	case KindError:
		if r.cause != nil {
			return fmt.Sprintf("Error(%s: %v)", r.message, r.cause)
		}
		return fmt.Sprintf("Error(%s)", r.message)
	default:
		return "Loading"
	}
}

// Failure - представление варианта Error в виде error.
type Failure struct {
	Message string
	Cause   error
}

func (f *Failure) Error() string {
	if f.Cause != nil {
		return f.Message + ": " + f.Cause.Error()
	}
	return f.Message
}

func (f *Failure) Unwrap() error {
	return f.Cause
}
