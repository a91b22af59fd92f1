package notecrypt

// Wipe zeroes b in place. Call it on secret material (raw keys, derived
// subkeys, decoded secrets) as soon as it is no longer needed.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
