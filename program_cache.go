package pm

// ProgramCache stores compiled expression programs keyed by expression
// strings, so hot predicates (for example an admin policy re-applied on
// every user) skip recompilation.
type ProgramCache interface {
	Get(key string) (any, bool)
	Set(key string, value any)
}
