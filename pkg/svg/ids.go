package svg

import "math/rand"

const (
	titleIDPrefix = "svg-inline--title-"
	titleIDLength = 10
	idAlphabet    = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
)

// RandomID returns n random alphanumeric characters. Identifiers only need
// to be unique within one rendered document.
func RandomID(n int) string {
	if n <= 0 {
		return ""
	}
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = idAlphabet[rand.Intn(len(idAlphabet))]
	}
	return string(buf)
}

func defaultTitleSuffix() string {
	return RandomID(titleIDLength)
}
