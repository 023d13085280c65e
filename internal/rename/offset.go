package rename

// ApplyOffset shifts a regular episode number by a per-series offset.
// Episode 0 marks specials and OVAs and is never shifted, absent
// episodes stay absent, and an offset can not push an episode below
// zero.
func ApplyOffset(episode, offset int) int {
	if episode <= 0 || offset == 0 {
		return episode
	}
	shifted := episode + offset
	if shifted < 0 {
		return 0
	}
	return shifted
}
