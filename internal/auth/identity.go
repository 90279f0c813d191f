package auth

// Identity is the normalized result of a completed provider flow.
// Profile stays provider-shaped; it is relayed to the client as-is
// rather than forced into a common schema. The one exception is
// LinkedIn, where the broker injects an "email" key fetched from the
// separate email resource.
type Identity struct {
	Provider string         `json:"provider"`
	Profile  map[string]any `json:"profile"`
}
