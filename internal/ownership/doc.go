/*
Package ownership assigns every construct of a collected model to the
component that owns it.

Assignment runs seven ordered passes. Each pass reads a snapshot of what
earlier passes decided and proposes owners; only keys still unassigned accept
a proposal, so earlier passes always win:

 1. Nesting: constructs declared inside a component body; components own themselves.
 2. API prefix: a named API goes to the first component whose name prefixes it.
 3. Endpoint scoring: entities and enums referenced by owned APIs' endpoints.
 4. Flow scoring: entity names in step text plus typed parameter references.
 5. Enum inheritance: the owner of the first entity with a field of that enum.
 6. Per-kind heuristics for events, signals, states, rules, journeys,
    operations, elements and actions, all reading the snapshot taken before
    the pass.
 7. Fallback: the first declared component.

Owner reports false for keys that stayed unassigned, which only happens when
the model declares no components.
*/
package ownership
