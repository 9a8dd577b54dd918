package content

// Arabic Unicode ranges: basic Arabic, Arabic Supplement, Arabic
// Extended-A, and both Presentation Forms blocks.
var arabicRanges = [...][2]rune{
	{0x0600, 0x06FF},
	{0x0750, 0x077F},
	{0x08A0, 0x08FF},
	{0xFB50, 0xFDFF},
	{0xFE70, 0xFEFF},
}

// ContainsArabic reports whether s contains at least one Arabic code
// point. Mixed-script text counts as Arabic for direction purposes.
func ContainsArabic(s string) bool {
	for _, r := range s {
		for _, rng := range arabicRanges {
			if r >= rng[0] && r <= rng[1] {
				return true
			}
		}
	}
	return false
}

// IsRTL reports whether the block should be laid out right-to-left,
// based on its full plain text.
func (b Block) IsRTL() bool {
	return ContainsArabic(b.PlainText())
}
