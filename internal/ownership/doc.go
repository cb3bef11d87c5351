// Package ownership decides whether a quick-tab entity belongs to the
// current execution context and whether an operation on it is permitted.
// The rules are deliberately asymmetric: legacy entities with no recorded
// owner are adoptable by any known context, while a context that has not
// resolved its own identity yet is denied everything. An unknown-identity
// context that mutated freely could leak entities across isolation
// namespaces, so that path fails closed.
//
// Every call site in the module goes through this package; there is no
// second ownership check anywhere else to drift out of sync.
package ownership
