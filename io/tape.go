package io

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadTape reads a stream of integers, separated by whitespace or commas.
func ReadTape(input io.Reader) (values []int, err error) {
	scanner := bufio.NewScanner(input)
	scanner.Split(bufio.ScanWords)

	var index int
	for scanner.Scan() {
		for _, word := range strings.Split(scanner.Text(), ",") {
			if len(word) == 0 {
				continue
			}
			var value int
			value, err = strconv.Atoi(word)
			if err != nil {
				err = ErrTapeValue{Index: index, Word: word}
				return
			}
			values = append(values, value)
			index++
		}
	}

	err = scanner.Err()

	return
}

// WriteTape writes a stream of integers, one per line.
func WriteTape(output io.Writer, values []int) (err error) {
	w := bufio.NewWriter(output)
	for _, value := range values {
		_, err = fmt.Fprintf(w, "%d\n", value)
		if err != nil {
			return
		}
	}

	return w.Flush()
}
