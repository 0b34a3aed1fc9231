// Package chflow provides context-aware helpers for channel operations so
// that loops waiting on tickers or results stop as soon as their context is
// canceled.
package chflow

import "context"

// Receive waits to receive a value from ch or for ctx to be canceled.
// It returns the value (zero value if canceled or closed) and whether the
// receive was successful.
func Receive[T any](ctx context.Context, ch <-chan T) (T, bool) {
	var data T
	select {
	case <-ctx.Done():
		return data, false
	case data, ok := <-ch:
		return data, ok
	}
}
