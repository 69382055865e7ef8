package resettoken

import "context"

// Issuer produces token values and their expirations. GenerateValue never
// fails; implementations must make values infeasible to guess or enumerate.
// Expiration never fails either: a TTL outside the valid window is a
// configuration error and implementations refuse to construct (or panic)
// instead of returning a soft error per call.
type Issuer interface {
	GenerateValue() Value
	Expiration() Expiration
}

// Sender delivers the reset link for a freshly issued token. Dispatch is
// asynchronous: an error means the message could not be handed off, not that
// delivery failed.
type Sender interface {
	SendResetLink(ctx context.Context, token ResetToken) error
}
