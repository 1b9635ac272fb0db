package ui

import (
	"fmt"
	"strconv"
	"strings"
)

const msgNotANumber = "Please enter a valid number."

// parseSelection turns typed input into a zero-based index into a list of n
// launches. Only plain digits are accepted. A non-empty problem is the message
// to show instead.
func parseSelection(input string, n int) (idx int, problem string) {
	input = strings.TrimSpace(input)
	if input == "" || strings.TrimLeft(input, "0123456789") != "" {
		return 0, msgNotANumber
	}
	num, err := strconv.Atoi(input)
	if err != nil {
		return 0, msgNotANumber
	}
	if num < 1 || num > n {
		return 0, fmt.Sprintf("Number must be between 1 and %d.", n)
	}
	return num - 1, ""
}
