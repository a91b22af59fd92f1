package notecrypt

import "io"

// setRandReaderForTesting swaps the package random source and returns a
// function that restores the original. Tests use it to exercise failure
// paths; production code always reads from crypto/rand.
func setRandReaderForTesting(r io.Reader) func() {
	original := randReader
	randReader = r
	return func() { randReader = original }
}
