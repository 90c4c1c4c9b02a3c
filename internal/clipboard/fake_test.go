package clipboard

import "github.com/rotisserie/eris"

// memoryClipboard keeps content in memory and can be told to fail.
type memoryClipboard struct {
	content string
	writes  int
	fail    bool
}

func (m *memoryClipboard) WriteAll(text string) error {
	if m.fail {
		return eris.New("exec: \"xclip\": executable file not found in $PATH")
	}
	m.writes++
	m.content = text
	return nil
}
