package core

// Environment is the deployment environment the terminal service runs in.
type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Testing     Environment = "testing"
	Production  Environment = "production"
)

func (e Environment) String() string {
	return string(e)
}

// IsProduction reports whether the environment is production.
func (e Environment) IsProduction() bool {
	return e == Production
}

// ParseEnvironment maps a raw value onto a known environment. Anything
// unrecognised is treated as Development.
func ParseEnvironment(v string) Environment {
	switch Environment(v) {
	case Production:
		return Production
	case Staging:
		return Staging
	case Testing:
		return Testing
	default:
		return Development
	}
}
