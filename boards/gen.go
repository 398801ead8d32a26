// Package boards holds the board definitions and their generated support
// packages. Each <board>.yaml pairs with a <board>/ package committed to the
// tree; the test in this package fails when the two drift apart.
package boards

//go:generate go run boardcode-go/cmd/boardgen generate -f osprey51.yaml -o osprey51
