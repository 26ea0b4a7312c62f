package lzss

// symbol is a Literal or a Pair, represented as a small struct rather than
// an interface: there are exactly two shapes and neither carries behavior
// of its own, so a tag plus the union of fields is cheaper and reads just as
// clearly as a two-case interface would.
type symbol struct {
	isPair bool
	lit    byte
	start  int
	length int
}

func literalSymbol(b byte) symbol {
	return symbol{lit: b}
}

func pairSymbol(start, length int) symbol {
	return symbol{isPair: true, start: start, length: length}
}

// cost returns the symbol's bit cost on the wire under cfg.
func (s symbol) cost(cfg Config) int {
	if s.isPair {
		return cfg.pairCost()
	}
	return literalCost
}
