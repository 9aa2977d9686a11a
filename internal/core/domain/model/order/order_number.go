package order

import (
	"crypto/rand"
	"fmt"
)

// orderNumberAlphabet is Crockford base32: no I, L, O, U, so numbers survive
// being read over the phone at a building site.
const orderNumberAlphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

// orderNumberLength is the random suffix length. 32^10 values make collisions
// vanishingly rare; the unique index on order_number catches the rest and the
// caller retries.
const orderNumberLength = 10

// GenerateOrderNumber produces a human-readable order number like
// "CM-7Q3F9K2M1X". Uniqueness is a collision-checked scheme: the generated
// number is random, the orders table carries a unique index, and creation
// retries on a duplicate.
func GenerateOrderNumber() (string, error) {
	buf := make([]byte, orderNumberLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate order number: %w", err)
	}

	for i, b := range buf {
		buf[i] = orderNumberAlphabet[int(b)%len(orderNumberAlphabet)]
	}
	return "CM-" + string(buf), nil
}
