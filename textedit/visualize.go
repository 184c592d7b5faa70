package textedit

import "strings"

// ShowTabs renders every tab in line as ^I.
func ShowTabs(line string) string {
	return strings.ReplaceAll(line, "\t", "^I")
}

// ShowEnds marks the end of line with a $.
func ShowEnds(line string) string {
	return line + "$"
}
