package engine

const (
	boundLower = 1 << iota
	boundUpper
)

const boundExact = boundLower | boundUpper

func roundPowerOfTwo(size int) int {
	var x = 1
	for (x << 1) <= size {
		x <<= 1
	}
	return x
}

// 16 bytes
type transEntry struct {
	key32 uint32
	move  uint32
	score int16
	depth int8
	bound uint8
	date  uint16
	_     uint16
}

type transTable struct {
	megabytes int
	entries   []transEntry
	date      uint16
	mask      uint32
}

func newTransTable(megabytes int) *transTable {
	var size = roundPowerOfTwo(1024 * 1024 * megabytes / 16)
	return &transTable{
		megabytes: megabytes,
		entries:   make([]transEntry, size),
		mask:      uint32(size - 1),
	}
}

func (tt *transTable) Size() int {
	return tt.megabytes
}

// Resize reallocates the entry array. All stored entries are lost;
// the GUI only changes Hash between searches.
func (tt *transTable) Resize(megabytes int) {
	if megabytes == tt.megabytes {
		return
	}
	var size = roundPowerOfTwo(1024 * 1024 * megabytes / 16)
	tt.megabytes = megabytes
	tt.entries = make([]transEntry, size)
	tt.mask = uint32(size - 1)
	tt.date = 0
}

func (tt *transTable) IncDate() {
	tt.date = (tt.date + 1) & 0x7ff
}

func (tt *transTable) Clear() {
	tt.date = 0
	for i := range tt.entries {
		tt.entries[i] = transEntry{}
	}
}

func (tt *transTable) Read(key uint64) (depth, score, bound int, move uint32, ok bool) {
	var entry = &tt.entries[uint32(key)&tt.mask]
	if entry.key32 == uint32(key>>32) {
		entry.date = tt.date
		depth = int(entry.depth)
		score = int(entry.score)
		bound = int(entry.bound)
		move = entry.move
		ok = true
	}
	return
}

func (tt *transTable) Update(key uint64, depth, score, bound int, move uint32) {
	var entry = &tt.entries[uint32(key)&tt.mask]
	var replace bool
	if entry.key32 == uint32(key>>32) {
		replace = depth >= int(entry.depth)-3 || bound == boundExact
	} else {
		replace = entry.date != tt.date ||
			depth >= int(entry.depth)
	}
	if replace {
		entry.key32 = uint32(key >> 32)
		entry.move = move
		entry.score = int16(score)
		entry.depth = int8(depth)
		entry.bound = uint8(bound)
		entry.date = tt.date
	}
}
