package enforce

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// ENFORCE helper to halt on a broken internal invariant. Accepts a bool (must be true),
// an error (must be nil), or a string (always fails). Extra args are logged with the failure.
func ENFORCE(query interface{}, args ...interface{}) {
	switch t := query.(type) {
	case bool:
		if !t {
			FAIL(args...)
		}
	case error:
		if t != nil {
			log.Error().Err(t).Msg("ENFORCE: " + fmt.Sprint(args...))
			panic(t)
		}
	case string:
		FAIL(append([]interface{}{t, " "}, args...)...)
	case nil:
		// enforce.ENFORCE(err) with a nil error.
	default:
		FAIL("incorrect usage of enforce with type ", fmt.Sprintf("%T", t), " ", args)
	}
}

// FAIL logs the args and panics.
func FAIL(args ...interface{}) {
	msg := fmt.Sprint(args...)
	log.Error().Msg("ENFORCE: " + msg)
	panic(msg)
}
