// Package buffer provides a reusable float64 FIFO for accumulating samples
// between producers and fixed-size consumers such as FFT windows. Consumed
// samples are compacted in place so a steady-state loop does not allocate.
package buffer
