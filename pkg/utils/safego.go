package utils

import "fmt"

// SafelyGo runs fn in a goroutine and routes a panic to onErr instead of
// crashing the process.
func SafelyGo(fn func(), onErr func(err error)) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				if onErr != nil {
					onErr(fmt.Errorf("panic: %v", r))
				}
			}
		}()
		fn()
	}()
}
