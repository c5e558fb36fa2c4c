// Package sim drives simulation runs over a config.Dataset.
//
// A Run owns its state vectors and trajectory outright. It advances strictly
// one month at a time on the calling goroutine:
//
//  1. grow the trajectory by a decade if the next month would not fit
//  2. set species ages for the month
//  3. apply management events that fall due this month
//  4. call the Physiology step (external; Carry holds the stand constant)
//  5. record species and stand outputs into the trajectory
//
// Nothing in a Run is safe for concurrent use. RunEnsemble gets parallelism
// across runs instead: every member builds its own Run, and the shared
// Dataset is only read.
package sim
