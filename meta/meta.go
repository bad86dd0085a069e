// meta/meta.go
package meta

// BOARD_SIZE is the default number of rows and columns.
const BOARD_SIZE = 3

// GO_ROUTINES defines the number of goroutines used to build outcome tables.
const GO_ROUTINES = 8

// TOKEN_1 and TOKEN_2 are the default player tokens, in play order.
const TOKEN_1 = "O"
const TOKEN_2 = "X"
