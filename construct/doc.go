// Package construct builds values out of validated parts. It defers
// construction until every part has been checked: bindings registered on a
// Group are queued, run together in registration order, and the
// constructor is invoked only when all of them passed. Failing parts never
// leave half-built values in the result; the caller gets either the value
// or the full set of messages.
//
// # Usage
//
//	type User struct {
//	    Name string
//	    Age  int
//	}
//
//	var (
//	    name *construct.Ref[string]
//	    age  *construct.Ref[int]
//	)
//	result := construct.Make("User",
//	    func(g *construct.Group) {
//	        name = construct.Bind(g, "name", func(s *conform.Scope) string {
//	            s.Check(rules.NotBlank(input.Name))
//	            return strings.TrimSpace(input.Name)
//	        })
//	        age = construct.Bind(g, "age", func(s *conform.Scope) int {
//	            s.Check(rules.Min(input.Age, 0))
//	            return input.Age
//	        })
//	    },
//	    func() User {
//	        return User{Name: name.Value(), Age: age.Value()}
//	    },
//	)
//
// Bind returns a Ref, a placeholder readable only after the group has run
// every binding; reading one earlier panics, because the value cannot
// exist yet. Sub-values nest with Nested, whose inner bindings report
// paths prefixed by the enclosing part, e.g. "fullName.first".
//
// # Error Handling
//
// Make returns a conform.Result: messages from any failed part, or the
// constructed value when all parts passed. Under conform.WithFailFast the
// first failing part stops the whole build with that single message.
package construct
