package aura

// Effect is a vendor defined lighting pattern such as static, breathing
// or rainbow. Only Name is meant to be shown to users.
type Effect struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// findEffect returns the first effect matching match.
func findEffect(effects []Effect, match func(Effect) bool) (Effect, bool) {
	for _, e := range effects {
		if match(e) {
			return e, true
		}
	}
	return Effect{}, false
}
