// Package dom implements html5.EventSource on top of the browser DOM through
// syscall/js. It only builds for GOOS=js GOARCH=wasm.
package dom
