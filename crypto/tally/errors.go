package tally

import "errors"

// ErrTallyUndecodable is returned when the exhaustive searcher exhausts the
// entire simplex without finding a tuple whose encoding matches the target
// point. Should be impossible for a valid aggregate of at most N ballots.
var ErrTallyUndecodable = errors.New("tally: no matching tuple found for target point")

// ErrArithmeticOverflow is returned when a digit computation or a partial
// sum would leave the 128-bit range the searcher operates in.
var ErrArithmeticOverflow = errors.New("tally: arithmetic overflow in 128-bit digit sum")

// ErrInvalidOptionCount is returned when the option count k is outside the
// supported [2, 10] range, or zero/negative when a schedule is built.
var ErrInvalidOptionCount = errors.New("tally: option count out of supported range")
