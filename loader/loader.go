// Package loader splits a multi-node source file into the program text
// of each node.
//
// A node section starts with a marker line '@<index>', and is followed
// by at most MAX_LINES lines of program text. Blank lines at the end of
// a section are not counted.
package loader

import (
	"bufio"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/ezrec/tis/node"
)

const (
	MAX_LINES = node.NODE_MAX_INSTRUCTIONS // Maximum program lines per node.
)

var regexpMarker = regexp.MustCompile(`^@([0-9]+)\s*$`)

// section is the program text of a single node.
type section struct {
	index  int
	lineno int // Line of the marker.
	lines  []string
}

// close validates the section, and stores it.
func (sec *section) close(sources map[int]string) (err error) {
	for len(sec.lines) > 0 && len(strings.TrimSpace(sec.lines[len(sec.lines)-1])) == 0 {
		sec.lines = sec.lines[:len(sec.lines)-1]
	}

	if len(sec.lines) > MAX_LINES {
		err = ErrNodeTooLong{LineNo: sec.lineno + MAX_LINES + 1, Index: sec.index}
		return
	}

	sources[sec.index] = strings.Join(sec.lines, "\n")

	return
}

// Split reads a multi-node source file, and returns the program text of
// each node by node index.
func Split(input io.Reader) (sources map[int]string, err error) {
	sources = map[int]string{}

	var sec *section
	scanner := bufio.NewScanner(input)
	for lineno := 1; scanner.Scan(); lineno++ {
		line := scanner.Text()

		match := regexpMarker.FindStringSubmatch(line)
		if match == nil {
			if sec != nil {
				sec.lines = append(sec.lines, line)
			} else if len(strings.TrimSpace(line)) != 0 {
				err = ErrNodeMissing{LineNo: lineno}
				return
			}
			continue
		}

		if sec != nil {
			err = sec.close(sources)
			if err != nil {
				return
			}
		}

		var index int
		index, err = strconv.Atoi(match[1])
		if err != nil {
			return
		}
		if _, ok := sources[index]; ok {
			err = ErrNodeDuplicate{LineNo: lineno, Index: index}
			return
		}

		sec = &section{index: index, lineno: lineno}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	if sec != nil {
		err = sec.close(sources)
	}

	return
}

// ReadFile splits a multi-node source file by path.
func ReadFile(path string) (sources map[int]string, err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	return Split(inf)
}
