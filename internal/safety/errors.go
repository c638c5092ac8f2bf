package safety

import "errors"

// ErrClassificationContract signals a malformed Classification reached the
// gate. It indicates a programming defect, never user input, and must be
// surfaced to the caller rather than silently defaulted.
var ErrClassificationContract = errors.New("classification violates gate contract")
