package textedit

// SqueezeState tracks whether the last line let through by [Squeeze] was
// blank.
type SqueezeState struct {
	PrevBlank bool
}

// Squeeze drops line if it is blank and the previous kept line was also blank.
// Otherwise it returns line unchanged and true.
func Squeeze(st *SqueezeState, line string) (string, bool) {
	blank := line == ""
	if st.PrevBlank && blank {
		return "", false
	}
	st.PrevBlank = blank
	return line, true
}
