package sessions

import (
	"context"
)

// Session value keys shared by the identification and form flows.
const (
	KeyFullName   = "full_name"
	KeyNationalID = "national_id"
	KeyLastID     = "last_id"
)

// Store associates a per-browser opaque token with a small set of named
// values. Values survive across requests from the same browser and are
// isolated between tokens. A missing key is not an error; Get returns "".
type Store interface {
	Get(ctx context.Context, token, key string) (string, error)
	Set(ctx context.Context, token, key, value string) error
}
