package charset

// Unicode scalar domain bounds, excluding the surrogate block
// [0xD800, 0xDFFF].
const (
	surrogateLo rune = 0xD800
	surrogateHi rune = 0xDFFF
	maxScalar   rune = 0x10FFFF
	minScalar   rune = 0x0000
)

// AnyChar returns the universe of Unicode scalar values: every rune in
// [0x0000, 0xD7FF] union [0xE000, 0x10FFFF]. It contains every valid
// Unicode scalar and no surrogate.
func AnyChar() Set {
	var s Set
	s.Insert(minScalar, surrogateLo-1)
	s.Insert(surrogateHi+1, maxScalar)
	return s
}
