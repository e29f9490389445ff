package home

import "strings"

// Keypad is the bounded digit buffer used for code-completed tasks.
type Keypad struct {
	buf      []rune
	secret   string
	capacity int
}

// NewKeypad creates a keypad that accepts up to capacity digits.
func NewKeypad(secret string, capacity int) *Keypad {
	return &Keypad{secret: secret, capacity: capacity}
}

// Press appends a digit. Non-digits and presses past capacity are ignored.
func (k *Keypad) Press(r rune) bool {
	if r < '0' || r > '9' || len(k.buf) >= k.capacity {
		return false
	}
	k.buf = append(k.buf, r)
	return true
}

// Erase removes the last digit, if any.
func (k *Keypad) Erase() {
	if len(k.buf) > 0 {
		k.buf = k.buf[:len(k.buf)-1]
	}
}

// Submit compares the buffer with the secret and clears it either way.
func (k *Keypad) Submit() bool {
	ok := string(k.buf) == k.secret
	k.Clear()
	return ok
}

// Clear empties the buffer.
func (k *Keypad) Clear() {
	k.buf = k.buf[:0]
}

// Digits returns the typed digits.
func (k *Keypad) Digits() string {
	return string(k.buf)
}

// Capacity returns the maximum number of digits.
func (k *Keypad) Capacity() int {
	return k.capacity
}

// Display renders the buffer with underscores for empty slots, e.g. "6 9 _ _ _".
func (k *Keypad) Display() string {
	slots := make([]string, k.capacity)
	for i := range slots {
		if i < len(k.buf) {
			slots[i] = string(k.buf[i])
		} else {
			slots[i] = "_"
		}
	}
	return strings.Join(slots, " ")
}
