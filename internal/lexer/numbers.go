package lexer

import "strconv"

// parseI32 validates that lit fits in a signed 32-bit integer, the way the
// parser (and ultimately the evaluator's Int value) will need to store it.
func parseI32(lit string) (int32, error) {
	v, err := strconv.ParseInt(lit, 10, 32)
	if err != nil {
		return 0, err
	}
	return int32(v), nil
}
