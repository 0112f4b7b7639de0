package registry

import "github.com/vertexql/graphql/executor"

// globalExecutor backs the package-level Register* functions so callers
// (schema setup code, mostly) don't have to thread an *executor.Executor
// through their own init paths.
var globalExecutor = executor.New()

// ResolverFunc is re-exported from executor so callers of this package
// never need to import it directly.
type ResolverFunc = executor.ResolverFunc

// RegisterQueryResolver registers a resolver for a query field on the
// global executor.
func RegisterQueryResolver(field string, resolver ResolverFunc) {
	globalExecutor.RegisterQueryResolver(field, resolver)
}

// RegisterMutationResolver registers a resolver for a mutation field on
// the global executor.
func RegisterMutationResolver(field string, resolver ResolverFunc) {
	globalExecutor.RegisterMutationResolver(field, resolver)
}

// RegisterSubscriptionResolver registers a resolver for a subscription
// field on the global executor.
func RegisterSubscriptionResolver(field string, resolver ResolverFunc) {
	globalExecutor.RegisterSubscriptionResolver(field, resolver)
}

// GetGlobalExecutor returns the global executor so other packages (the
// HTTP handler, in particular) can run queries against whatever has
// been registered on it.
func GetGlobalExecutor() *executor.Executor {
	return globalExecutor
}
