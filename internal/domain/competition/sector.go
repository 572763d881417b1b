package competition

import "fmt"

// MaxSectors keeps every sector label a single letter A..Z.
const MaxSectors = 26

// SectorSizes lists how many draw positions each sector holds, in draw order.
type SectorSizes []int

func (s SectorSizes) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("%w: at least one sector is required", ErrInvalidSectorSizes)
	}
	if len(s) > MaxSectors {
		return fmt.Errorf("%w: %d sectors, at most %d allowed", ErrInvalidSectorSizes, len(s), MaxSectors)
	}
	for i, size := range s {
		if size <= 0 {
			return fmt.Errorf("%w: sector %s size=%d", ErrInvalidSectorSizes, SectorLabel(i), size)
		}
	}
	return nil
}

// Capacity is the highest draw position covered by any sector.
func (s SectorSizes) Capacity() int {
	total := 0
	for _, size := range s {
		total += size
	}
	return total
}

func (s SectorSizes) Labels() []string {
	out := make([]string, 0, len(s))
	for i := range s {
		out = append(out, SectorLabel(i))
	}
	return out
}

// Contains reports whether label names one of the configured sectors.
func (s SectorSizes) Contains(label string) bool {
	for i := range s {
		if SectorLabel(i) == label {
			return true
		}
	}
	return false
}

// SectorLabel turns a 0-based sector index into its letter.
func SectorLabel(index int) string {
	if index < 0 {
		return ""
	}
	return string(rune('A' + index))
}

// SectorIndex returns the 0-based sector holding drawPosition, or -1.
func SectorIndex(drawPosition int, sizes SectorSizes) int {
	if drawPosition <= 0 {
		return -1
	}

	upper := 0
	for i, size := range sizes {
		upper += size
		if drawPosition <= upper {
			return i
		}
	}
	return -1
}

// ResolveSector maps a draw position to its sector label.
func ResolveSector(drawPosition int, sizes SectorSizes) (string, bool) {
	idx := SectorIndex(drawPosition, sizes)
	if idx < 0 {
		return "", false
	}
	return SectorLabel(idx), true
}
