// Package lang implements the yex scripting language: lexer, parser,
// environment model, and tree-walking evaluator.
//
// # Philosophy
//
// yex is expression-oriented. A program is exactly one expression; there are
// no statements. Every construct, including `let`, yields a value, and the
// only observable side effect is the built-in `puts`.
//
// # Grammar
//
// Informal EBNF, lowest to highest precedence:
//
//	expr        → let_expr | fn_expr | binary_expr
//	let_expr    → "let" IDENT param_list? "=" expr "in" expr
//	fn_expr     → "fn" param_list "=" expr
//	param_list  → IDENT+
//	binary_expr → apply_expr ( ("+" | "*") apply_expr )*
//	apply_expr  → primary ( "(" arg_list? ")" )*
//	arg_list    → expr ("," expr)*
//	primary     → NUMBER | STRING | IDENT | "(" expr ")" | let_expr | fn_expr
//
// Binary operators are left-associative and share a single precedence tier.
// Application binds tighter than binary operators. A parameterized `let`
// such as
//
//	let add a b = a + b in add(1, 2)
//
// is sugar for binding an anonymous function:
//
//	let add = fn a b = a + b in add(1, 2)
//
// The desugared form additionally makes the bound name visible inside its
// own body, so named functions may recurse.
//
// # Example
//
//	let say_hello name = puts("Hello " + name)
//	in say_hello("world")
//
// # Scoping
//
// Environments form an immutable chain of frames. Each `let` body and each
// function call evaluates in a fresh child frame; the nearest frame wins on
// lookup. A function value captures the frame chain active at its
// definition, and call frames extend that captured chain rather than the
// caller's, giving lexical rather than dynamic scoping.
package lang
