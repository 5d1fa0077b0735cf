package ringshell

import (
	"fmt"
	"strings"
)

// Occupancy (len, cap, free space, state) as a tab separated line
func (s *Shell) GetInfoString() string {
	return fmt.Sprintf("%d\t%d\t%d\t%s\n", s.Buf.Len(), s.Buf.Cap(), s.Buf.FreeSpace(), s.getStateString())
}

/**************************** helper funcs ****************************/

func (s *Shell) getStateString() string {
	switch {
	case s.Buf.IsEmpty():
		return "empty"
	case s.Buf.IsFull():
		return "full"
	}
	return "partial"
}

func formatBytes(data []byte) string {
	if len(data) == 0 {
		return "(none)\n"
	}
	vals := make([]string, len(data))
	for i, b := range data {
		vals[i] = fmt.Sprint(b)
	}
	return strings.Join(vals, " ") + "\n"
}
