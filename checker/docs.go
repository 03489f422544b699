// Package checker turns type descriptions into reusable runtime checkers and
// memoizes them in a registry. A checker tests one value against one
// description, recursing into container elements through the registry, and
// reports failures as a chained error whose lines read from outermost context
// ("element #2 has an incompatible type") down to the concrete mismatch
// (`Expect: "int". Actual "string(x)".`).
package checker
