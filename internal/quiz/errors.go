package quiz

import "errors"

var errNoEngine = errors.New("quiz: nil engine")
