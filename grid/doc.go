// Package grid connects execution nodes into a rectangular grid, attaches
// the boundary input and output streams, and ticks every unit in global
// lock-step.
//
// Each tick is three sweeps over the units, in the fixed order of inputs,
// grid nodes in row-major order, then outputs:
//
//   - before-tick, where blocked readers take values from their writers
//   - tick, where every unit executes one step
//   - after-tick, where units still blocked are marked deadlocked
package grid
