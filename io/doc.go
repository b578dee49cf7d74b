// Package io provides the grid boundary nodes, which feed values into
// the grid and collect the values it produces, and the text tape format
// for value streams.
package io
